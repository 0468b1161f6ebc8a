// Package textsource turns uploaded resume documents into plain text.
package textsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	DefaultMaxFileSizeMB = 10
	DefaultPreviewLength = 300
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// AllowedTypes lists the accepted file extensions.
var AllowedTypes = []string{".pdf", ".docx", ".txt", ".jpg", ".jpeg", ".png"}

// Document is a resume file together with its extracted text.
type Document struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
	Text     string `json:"-"`
	Preview  string `json:"preview"`
}

// Source extracts text from a document on disk.
type Source interface {
	Extract(ctx context.Context, path string) (*Document, error)
}

// Extractor is the file based Source. Plain text is decoded directly, every
// other type is converted by docconv. Images need a binary built with the
// docconv ocr tag.
type Extractor struct {
	// MaxFileSize is the size limit in bytes. Zero means no limit.
	MaxFileSize int64
	// PreviewLength is the number of runes kept in Document.Preview.
	PreviewLength int

	convert func(path string) (string, error)
}

// New returns an Extractor limited to maxFileSizeMB megabytes. Non-positive
// values fall back to the defaults.
func New(maxFileSizeMB, previewLength int) *Extractor {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = DefaultMaxFileSizeMB
	}
	if previewLength <= 0 {
		previewLength = DefaultPreviewLength
	}

	return &Extractor{
		MaxFileSize:   int64(maxFileSizeMB) * 1024 * 1024,
		PreviewLength: previewLength,
		convert:       convertWithDocconv,
	}
}

// Extract validates the file type and size and returns the document text.
func (e *Extractor) Extract(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !IsAllowed(ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, filepath.Base(path))
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if e.MaxFileSize > 0 && stat.Size() > e.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, path, stat.Size(), e.MaxFileSize)
	}

	var text string
	if ext == ".txt" {
		text, err = readText(path)
	} else {
		convert := e.convert
		if convert == nil {
			convert = convertWithDocconv
		}
		text, err = convert(path)
	}
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", path, err)
	}

	return &Document{
		ID:       uuid.NewString(),
		Path:     path,
		FileName: filepath.Base(path),
		FileType: ext,
		FileSize: stat.Size(),
		Text:     text,
		Preview:  Preview(text, e.PreviewLength),
	}, nil
}

// IsAllowed reports whether ext (with the leading dot) is an accepted type.
func IsAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Preview returns the first limit runes of text, with an ellipsis when cut.
func Preview(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}

// readText decodes a plain text file as UTF-8, honouring a byte order mark
// and dropping invalid bytes.
func readText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(file, decoder))
	if err != nil {
		return "", err
	}

	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError {
			return -1
		}
		return r
	}, string(data)), nil
}

func convertWithDocconv(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}
