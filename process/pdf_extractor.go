package process

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// LedongthucBackend implements Backend using github.com/ledongthuc/pdf
type LedongthucBackend struct{}

// NewLedongthucBackend creates a new instance of LedongthucBackend
func NewLedongthucBackend() *LedongthucBackend {
	return &LedongthucBackend{}
}

func (b *LedongthucBackend) Name() string {
	return BackendLedongthuc
}

// Open opens a PDF file path
func (b *LedongthucBackend) Open(filePath string) (Document, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	r, err := newLedongthucReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, &MalformedError{Err: err}
	}

	return &ledongthucDocument{file: f, reader: r}, nil
}

// newLedongthucReader turns library panics on broken input into errors.
func newLedongthucReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("%v", rec)
		}
	}()
	return pdf.NewReader(f, size)
}

type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *ledongthucDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *ledongthucDocument) PageText(index int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%v", rec)
		}
	}()

	// the library numbers pages from 1
	page := d.reader.Page(index + 1)
	if page.V.IsNull() {
		return "", nil
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}
	return text, nil
}

func (d *ledongthucDocument) Close() error {
	return d.file.Close()
}
