package process

import (
	"fmt"
	"strings"
)

// Document is an opened PDF whose pages can be read by index.
type Document interface {
	// NumPages returns the page count of the document
	NumPages() int

	// PageText extracts the plain text of the page at the 0-based index
	PageText(index int) (string, error)

	// Close releases the underlying file
	Close() error
}

// Backend defines the interface for a PDF parsing library
type Backend interface {
	Name() string

	// Open parses the PDF at filePath
	Open(filePath string) (Document, error)
}

const (
	BackendLedongthuc = "ledongthuc"
	BackendRSC        = "rsc"
)

// Backends lists the names accepted by NewBackend.
var Backends = []string{BackendLedongthuc, BackendRSC}

// NewBackend returns the backend registered under name.
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendLedongthuc:
		return NewLedongthucBackend(), nil
	case BackendRSC:
		return NewRSCBackend(), nil
	default:
		return nil, fmt.Errorf("unknown pdf backend %q (supported: %s)", name, strings.Join(Backends, ", "))
	}
}

// Client wraps the Backend interface for easy swapping of implementations
type Client struct {
	backend   Backend
	validator *Validator
}

// NewClient creates a new PDF processor client with the given backend.
// validator may be nil.
func NewClient(backend Backend, validator *Validator) *Client {
	return &Client{
		backend:   backend,
		validator: validator,
	}
}

// Backend returns the name of the wrapped backend
func (c *Client) Backend() string {
	return c.backend.Name()
}

// Open validates filePath when a validator is configured and opens it with the backend.
func (c *Client) Open(filePath string) (Document, error) {
	if c.validator != nil {
		if err := c.validator.Validate(filePath); err != nil {
			return nil, err
		}
	}
	return c.backend.Open(filePath)
}
