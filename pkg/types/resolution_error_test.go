package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolutionError_Messages tests that user-facing messages enumerate the
// valid alternatives
func TestResolutionError_Messages(t *testing.T) {
	t.Run("MalformedIdentifier", func(t *testing.T) {
		err := NewMalformedIdentifierError("gpt-4o")
		assert.Equal(t, ErrCodeMalformedIdentifier, err.Code)
		assert.Contains(t, err.Error(), `"gpt-4o"`)
		assert.Contains(t, err.Error(), "<provider>/<model-name>")
	})

	t.Run("UnknownProviderListsAllProviders", func(t *testing.T) {
		err := NewUnknownProviderError("badprovider", []string{"openai", "anthropic", "google"})
		assert.Equal(t, ErrCodeUnknownProvider, err.Code)
		assert.Contains(t, err.Error(), `"badprovider"`)
		assert.Contains(t, err.Error(), "anthropic, google, openai")
	})

	t.Run("UnknownModelListsProviderModels", func(t *testing.T) {
		err := NewUnknownModelError("openai", "gpt-9000", []string{"gpt-4o-mini", "gpt-4o"})
		assert.Equal(t, ErrCodeUnknownModel, err.Code)
		assert.Contains(t, err.Error(), `"gpt-9000"`)
		assert.Contains(t, err.Error(), `"openai"`)
		assert.Contains(t, err.Error(), "gpt-4o, gpt-4o-mini")
	})

	t.Run("CatalogUnavailable", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewCatalogUnavailableError(cause)
		assert.Equal(t, ErrCodeCatalogUnavailable, err.Code)
		assert.Contains(t, err.Error(), "catalog unavailable")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

// TestResolutionError_KnownIsSortedCopy tests that the alternatives list is
// sorted and detached from the caller's slice
func TestResolutionError_KnownIsSortedCopy(t *testing.T) {
	known := []string{"zeta", "alpha", "mid"}
	err := NewUnknownProviderError("x", known)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, err.Known)

	// Mutating the caller's slice must not change the error.
	known[0] = "mutated"
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, err.Known)
}

// TestResolutionError_Unwrap tests cause unwrapping for errors.Is
func TestResolutionError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := NewCatalogUnavailableError(cause)

	require.ErrorIs(t, err, cause)
	assert.Nil(t, NewMalformedIdentifierError("x").Unwrap())
}

// TestResolutionError_Retryable tests that only catalog_unavailable is
// classified as transient
func TestResolutionError_Retryable(t *testing.T) {
	assert.False(t, NewMalformedIdentifierError("x").Retryable())
	assert.False(t, NewUnknownProviderError("x", nil).Retryable())
	assert.False(t, NewUnknownModelError("p", "m", nil).Retryable())
	assert.True(t, NewCatalogUnavailableError(errors.New("boom")).Retryable())
}
