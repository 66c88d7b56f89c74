package file

import (
	"errors"
	"fmt"
	"os"

	"pdftext/process"
)

type ExtractionResult struct {
	FilePath string   `json:"filepath"`
	Backend  string   `json:"backend"`
	Pages    int      `json:"pages"`
	Texts    []string `json:"texts"` // one entry per page, in page order
}

type TextExtractor interface {
	Extract(filePath string) (string, error)
}

// Kind classifies why an extraction failed.
type Kind int

const (
	MalformedDocument Kind = iota
	FileNotFound
	PermissionDenied
	PageExtractionFailed
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case PermissionDenied:
		return "permission denied"
	case PageExtractionFailed:
		return "page extraction failed"
	default:
		return "malformed document"
	}
}

// ExtractionError is returned for every failed extraction. Page is the 0-based
// page index and is only meaningful for PageExtractionFailed.
type ExtractionError struct {
	Kind Kind
	Path string
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	switch e.Kind {
	case FileNotFound, PermissionDenied:
		// os errors already name the path
		return e.Err.Error()
	case PageExtractionFailed:
		return fmt.Sprintf("page %d: %v", e.Page+1, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// openError classifies an error returned while opening a document.
func openError(path string, err error) *ExtractionError {
	kind := MalformedDocument
	switch {
	case errors.Is(err, os.ErrNotExist):
		kind = FileNotFound
	case errors.Is(err, os.ErrPermission):
		kind = PermissionDenied
	}

	var malformed *process.MalformedError
	if kind == MalformedDocument && !errors.As(err, &malformed) {
		// directories, short reads and similar I/O failures
		err = fmt.Errorf("failed to read pdf: %w", err)
	}

	return &ExtractionError{Kind: kind, Path: path, Err: err}
}
