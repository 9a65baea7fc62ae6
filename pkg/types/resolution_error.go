package types

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode categorizes resolution errors
type ErrorCode string

const (
	ErrCodeMalformedIdentifier ErrorCode = "malformed_identifier"
	ErrCodeUnknownProvider     ErrorCode = "unknown_provider"
	ErrCodeUnknownModel        ErrorCode = "unknown_model"
	ErrCodeCatalogUnavailable  ErrorCode = "catalog_unavailable"
)

// ResolutionError represents a failed model resolution. The first three
// codes are configuration mistakes the user must fix; CatalogUnavailable is
// raised by the catalog collaborator when it could not be populated and is
// the only transient code.
type ResolutionError struct {
	Code        ErrorCode // Categorized error code
	Identifier  string    // The configured identifier as written (malformed_identifier)
	Provider    string    // Provider segment (unknown_provider, unknown_model)
	Model       string    // Model segment (unknown_model)
	Known       []string  // Sorted valid alternatives for user-facing suggestion
	OriginalErr error     // Wrapped cause (catalog_unavailable)
}

// Error implements the error interface. Messages for the unknown_* codes
// always enumerate the valid alternatives so the user can correct the
// configuration without consulting external documentation.
func (e *ResolutionError) Error() string {
	switch e.Code {
	case ErrCodeMalformedIdentifier:
		return fmt.Sprintf("malformed model identifier %q: expected \"<provider>/<model-name>\"", e.Identifier)
	case ErrCodeUnknownProvider:
		return fmt.Sprintf("unknown provider %q: valid providers are: %s", e.Provider, strings.Join(e.Known, ", "))
	case ErrCodeUnknownModel:
		return fmt.Sprintf("unknown model %q for provider %q: valid models are: %s", e.Model, e.Provider, strings.Join(e.Known, ", "))
	case ErrCodeCatalogUnavailable:
		return fmt.Sprintf("model catalog unavailable: %v", e.OriginalErr)
	}
	return fmt.Sprintf("model resolution failed (code=%s)", e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *ResolutionError) Unwrap() error {
	return e.OriginalErr
}

// Retryable returns true if the error reflects an external condition that
// may clear on its own. Configuration mistakes are never retryable.
func (e *ResolutionError) Retryable() bool {
	return e.Code == ErrCodeCatalogUnavailable
}

// NewMalformedIdentifierError creates an error for an identifier that is not
// of the form "provider/model".
func NewMalformedIdentifierError(identifier string) *ResolutionError {
	return &ResolutionError{
		Code:       ErrCodeMalformedIdentifier,
		Identifier: identifier,
	}
}

// NewUnknownProviderError creates an error for a provider absent from the
// catalog. known is copied and sorted so the message is deterministic.
func NewUnknownProviderError(provider string, known []string) *ResolutionError {
	return &ResolutionError{
		Code:     ErrCodeUnknownProvider,
		Provider: provider,
		Known:    sortedCopy(known),
	}
}

// NewUnknownModelError creates an error for a model absent from a known
// provider's model set. known is copied and sorted.
func NewUnknownModelError(provider, model string, known []string) *ResolutionError {
	return &ResolutionError{
		Code:     ErrCodeUnknownModel,
		Provider: provider,
		Model:    model,
		Known:    sortedCopy(known),
	}
}

// NewCatalogUnavailableError wraps a catalog population failure.
func NewCatalogUnavailableError(err error) *ResolutionError {
	return &ResolutionError{
		Code:        ErrCodeCatalogUnavailable,
		OriginalErr: err,
	}
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
