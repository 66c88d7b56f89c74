package process

import (
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"
)

// RSCBackend implements Backend using rsc.io/pdf.
//
// rsc.io/pdf reports malformed input by panicking, so every call into the
// library recovers and returns an error instead.
type RSCBackend struct{}

func NewRSCBackend() *RSCBackend {
	return &RSCBackend{}
}

func (b *RSCBackend) Name() string {
	return BackendRSC
}

// Open opens the file itself rather than through pdf.Open, which never
// closes its handle.
func (b *RSCBackend) Open(filePath string) (Document, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	r, err := newRSCReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, &MalformedError{Err: err}
	}

	return &rscDocument{file: f, reader: r}, nil
}

func newRSCReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("%v", rec)
		}
	}()
	return pdf.NewReader(f, size)
}

type rscDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *rscDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *rscDocument) PageText(index int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%v", rec)
		}
	}()

	page := d.reader.Page(index + 1)
	if page.V.IsNull() {
		return "", nil
	}

	var sb strings.Builder
	for _, t := range page.Content().Text {
		sb.WriteString(t.S)
	}
	return sb.String(), nil
}

func (d *rscDocument) Close() error {
	return d.file.Close()
}
