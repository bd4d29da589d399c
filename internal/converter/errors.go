package converter

import (
	"context"
	"errors"
	"os"

	"github.com/ginjaninja78/edi-document-renderer/internal/decoder"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// Error types reported in error logs and run summaries.
const (
	ErrorTypeInput       = "input"
	ErrorTypeUnsupported = "unsupported_type"
	ErrorTypeLayout      = "layout"
	ErrorTypeCanceled    = "canceled"
	ErrorTypeConversion  = "conversion"
)

// errorType classifies a conversion error for reporting.
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeCanceled
	case errors.Is(err, decoder.ErrUnsupportedType):
		return ErrorTypeUnsupported
	case errors.Is(err, layout.ErrInvalidLayout):
		return ErrorTypeLayout
	case errors.Is(err, decoder.ErrNoTransactionSets), errors.Is(err, os.ErrNotExist):
		return ErrorTypeInput
	default:
		return ErrorTypeConversion
	}
}
