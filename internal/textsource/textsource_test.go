package textsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Jane Doe\nGo\xff developer")...)
	path := writeFile(t, "Jane.TXT", data)

	doc, err := New(0, 0).Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nGo developer", doc.Text)
	assert.Equal(t, ".txt", doc.FileType)
	assert.Equal(t, "Jane.TXT", doc.FileName)
	assert.Equal(t, int64(len(data)), doc.FileSize)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, doc.Text, doc.Preview)
}

func TestExtractConvertsOtherTypes(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cv.pdf", []byte("%PDF-1.4"))

	var converted string
	e := New(1, 5)
	e.convert = func(p string) (string, error) {
		converted = p
		return "converted resume text", nil
	}

	doc, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, converted)
	assert.Equal(t, "converted resume text", doc.Text)
	assert.Equal(t, "conve...", doc.Preview)
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "cv.exe", []byte("MZ"))
		_, err := New(0, 0).Extract(context.Background(), path)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "cv.txt", []byte(strings.Repeat("a", 64)))
		e := New(0, 0)
		e.MaxFileSize = 10
		_, err := e.Extract(context.Background(), path)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := New(0, 0).Extract(context.Background(), filepath.Join(t.TempDir(), "none.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("converter failure", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "scan.png", []byte("png"))
		boom := errors.New("ocr disabled")
		e := New(0, 0)
		e.convert = func(string) (string, error) { return "", boom }
		_, err := e.Extract(context.Background(), path)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(0, 0).Extract(ctx, "cv.txt")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsAllowed(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".pdf", ".DOCX", ".txt", ".jpg", ".JPEG", ".png"} {
		assert.True(t, IsAllowed(ext), ext)
	}
	for _, ext := range []string{"", ".doc", ".gif", "pdf"} {
		assert.False(t, IsAllowed(ext), ext)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héllo", Preview("héllo", 5))
	assert.Equal(t, "hé...", Preview("héllo", 2))
	assert.Equal(t, "abc", Preview("abc", 0))
}
