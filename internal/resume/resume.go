// Package resume turns uploaded resume documents into plain text.
//
// PDF and DOCX are decoded with third-party parsers that may fail, hang on
// malformed input or panic; Extractor contains all of that behind a single
// error, common.ErrExtractionFailed, and a context deadline.
package resume

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

// Document kinds.
const (
	KindPDF  = "pdf"
	KindDOCX = "docx"
	KindText = "text"
)

// DefaultMaxBytes caps the size of a document accepted for extraction.
const DefaultMaxBytes = 10 << 20

// Decoder turns raw document bytes into text.
type Decoder func(data []byte) (string, error)

// Extractor picks a decoder by document kind and runs it under a deadline.
type Extractor struct {
	maxBytes int64
	timeout  time.Duration
	decoders map[string]Decoder
}

// Option customises an Extractor.
type Option func(*Extractor)

// WithMaxBytes sets the size cap. Non-positive values keep the default.
func WithMaxBytes(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxBytes = n
		}
	}
}

// WithTimeout bounds a single extraction. Zero means only the caller's
// context applies.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) { e.timeout = d }
}

// WithDecoder registers or replaces the decoder for kind.
func WithDecoder(kind string, d Decoder) Option {
	return func(e *Extractor) { e.decoders[kind] = d }
}

// NewExtractor returns an Extractor with PDF, DOCX and plain text support.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		maxBytes: DefaultMaxBytes,
		decoders: map[string]Decoder{
			KindPDF:  decodePDF,
			KindDOCX: decodeDOCX,
			KindText: decodeText,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFile reads path and extracts its text.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrExtractionFailed, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", common.ErrExtractionFailed, path)
	}
	if info.Size() > e.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes, limit %d", common.ErrExtractionFailed, path, info.Size(), e.maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrExtractionFailed, err)
	}
	return e.Extract(ctx, filepath.Base(path), data)
}

// Extract decodes data, choosing the decoder from filename's extension or,
// failing that, from the sniffed content type. Every failure, including a
// decoder panic or an expired context, wraps common.ErrExtractionFailed.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document", common.ErrExtractionFailed)
	}
	if int64(len(data)) > e.maxBytes {
		return "", fmt.Errorf("%w: document is %d bytes, limit %d", common.ErrExtractionFailed, len(data), e.maxBytes)
	}

	kind := DetectKind(filename, data)
	decode, ok := e.decoders[kind]
	if !ok {
		return "", fmt.Errorf("%w: unsupported document type %q", common.ErrExtractionFailed, kind)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("decoder panic: %v", r)}
			}
		}()
		text, err := decode(data)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", common.ErrExtractionFailed, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("%w: %s: %w", common.ErrExtractionFailed, kind, r.err)
		}
		return r.text, nil
	}
}

// DetectKind maps a filename extension, or the content when the extension
// is unknown, to a document kind. Unrecognised input returns the sniffed
// MIME type.
func DetectKind(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	case ".txt", ".text", ".md":
		return KindText
	}

	mime := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(mime, "application/pdf"):
		return KindPDF
	case strings.HasPrefix(mime, "application/zip"):
		// DOCX is a zip container
		return KindDOCX
	case strings.HasPrefix(mime, "text/plain"):
		return KindText
	}
	return mime
}

func decodeText(data []byte) (string, error) {
	return string(data), nil
}
