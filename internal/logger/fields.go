package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldDocument is the structured log field key for the scored document.
	FieldDocument = "document"
	// FieldJobTitle is the structured log field key for the job being matched.
	FieldJobTitle = "job_title"
)

// OrNop returns log, or a no-op logger when log is nil.
func OrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// CommonFields returns the fields describing which document is scored against
// which job. Values are trimmed and blank ones are omitted.
func CommonFields(document, jobTitle string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	for _, kv := range [...][2]string{{FieldDocument, document}, {FieldJobTitle, jobTitle}} {
		if value := strings.TrimSpace(kv[1]); value != "" {
			fields = append(fields, zap.String(kv[0], value))
		}
	}
	return fields
}

// WithCommonFields attaches the document and job fields to log.
func WithCommonFields(log *zap.Logger, document, jobTitle string) *zap.Logger {
	log = OrNop(log)
	if fields := CommonFields(document, jobTitle); len(fields) > 0 {
		return log.With(fields...)
	}
	return log
}
