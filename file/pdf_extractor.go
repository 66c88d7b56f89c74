package file

import (
	"fmt"
	"io"
	"time"

	"pdftext/process"
	"pdftext/text"

	"go.uber.org/zap"
)

// PDFExtractor implements the TextExtractor interface for PDF files
type PDFExtractor struct {
	client *process.Client
	out    io.Writer
	logger *zap.Logger
}

// NewPDFExtractor creates a PDFExtractor. The page-count preamble is written to
// out as soon as the document is opened.
func NewPDFExtractor(client *process.Client, out io.Writer, logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{
		client: client,
		out:    out,
		logger: logger,
	}
}

// Extract returns the text of every page of the PDF at fp, each page prefixed
// with its header. A document without pages yields an empty string.
func (p *PDFExtractor) Extract(fp string) (string, error) {
	result, err := p.ExtractPages(fp)
	if err != nil {
		return "", err
	}

	entries := make([]string, 0, result.Pages)
	for i, t := range result.Texts {
		entries = append(entries, text.PageEntry(i+1, t))
	}
	return text.Join(entries), nil
}

// ExtractPages opens fp and collects the text of each page in order. Any page
// failure aborts the whole extraction.
func (p *PDFExtractor) ExtractPages(fp string) (*ExtractionResult, error) {
	start := time.Now()

	doc, err := p.client.Open(fp)
	if err != nil {
		p.logger.Error("Failed to open PDF",
			zap.String("file", fp),
			zap.String("backend", p.client.Backend()),
			zap.Error(err))
		return nil, openError(fp, err)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			p.logger.Warn("Failed to close PDF", zap.String("file", fp), zap.Error(err))
		}
	}()

	numPages := doc.NumPages()
	if _, err := io.WriteString(p.out, text.Preamble(numPages)); err != nil {
		return nil, fmt.Errorf("failed to write preamble: %w", err)
	}

	result := &ExtractionResult{
		FilePath: fp,
		Backend:  p.client.Backend(),
		Pages:    numPages,
		Texts:    make([]string, 0, numPages),
	}

	for i := 0; i < numPages; i++ {
		pageText, err := doc.PageText(i)
		if err != nil {
			p.logger.Error("Failed to extract page text",
				zap.String("file", fp),
				zap.Int("page", i+1),
				zap.Error(err))
			return nil, &ExtractionError{Kind: PageExtractionFailed, Path: fp, Page: i, Err: err}
		}

		p.logger.Debug("Page extracted",
			zap.String("file", fp),
			zap.Int("page", i+1),
			zap.Int("chars", len(pageText)))
		result.Texts = append(result.Texts, pageText)
	}

	p.logger.Info("PDF extracted",
		zap.String("file", fp),
		zap.String("backend", result.Backend),
		zap.Int("pages", numPages),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}
