package process

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// MalformedError reports a file that was read but is not a usable PDF.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return e.Err.Error()
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Validator checks the PDF structure with pdfcpu before a backend parses it.
type Validator struct {
	conf *model.Configuration
}

// NewValidator creates a Validator running pdfcpu in relaxed mode.
func NewValidator() *Validator {
	// keep pdfcpu from writing its config file under the user config dir
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Validator{conf: conf}
}

// Validate returns a *MalformedError when pdfcpu rejects the file.
func (v *Validator) Validate(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return err
	}
	if err := api.ValidateFile(filePath, v.conf); err != nil {
		return &MalformedError{Err: fmt.Errorf("validation failed: %w", err)}
	}
	return nil
}
