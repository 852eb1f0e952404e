package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "phonedir.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "phonedir.yaml", file)
		assert.Equal(t, "[config:fatal] invalid configuration", err.Error())
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		assert.True(t, IsClassified(err))
		assert.True(t, HasCategory(err, CategoryConfig))
		assert.True(t, err.IsFatal())
		assert.Equal(t, CategoryConfig, GetCategory(err))
		assert.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		inner := InputError("missing separator").Build()
		wrapped := fmt.Errorf("line 3: %w", inner)

		got, ok := AsClassified(wrapped)
		require.True(t, ok)
		assert.Same(t, inner, got)
		assert.True(t, HasCategory(wrapped, CategoryInput))
	})
}

func TestClassifiedErrorIs(t *testing.T) {
	sentinel := ValidationError("invalid code").Build()

	withCtx := ValidationError("invalid code").WithContext("area_code", "123").Build()
	assert.ErrorIs(t, withCtx, sentinel)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", withCtx), sentinel)

	other := ValidationError("invalid length").Build()
	assert.NotErrorIs(t, other, sentinel)

	sameMessageOtherCategory := InputError("invalid code").Build()
	assert.NotErrorIs(t, sameMessageOtherCategory, sentinel)
}

func TestErrorBuilder(t *testing.T) {
	originalErr := errors.New("no such file")
	err := NewError(CategoryFileSystem, "open directory").
		WithCause(originalErr).
		Warning().
		WithContext("path", "numbers.txt").
		WithContextMap(ErrorContext{"attempt": 1}).
		Build()

	assert.Equal(t, CategoryFileSystem, err.Category())
	assert.Equal(t, SeverityWarning, err.Severity())
	assert.ErrorIs(t, err, originalErr)
	assert.Same(t, originalErr, err.Cause())

	path, _ := err.Context().GetString("path")
	assert.Equal(t, "numbers.txt", path)
	attempt, ok := err.Context().Get("attempt")
	require.True(t, ok)
	assert.Equal(t, 1, attempt)
	assert.Contains(t, err.Error(), "no such file")
}

func TestWithContextDoesNotMutateOriginal(t *testing.T) {
	base := ValidationError("invalid length").WithContext("input", "555").Build()
	derived := base.WithContext("cleaned_length", 3)

	_, ok := base.Context().Get("cleaned_length")
	assert.False(t, ok)
	v, ok := derived.Context().Get("cleaned_length")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	input, _ := derived.Context().GetString("input")
	assert.Equal(t, "555", input)
}

func TestConvenienceConstructorSeverity(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClassifiedError
		category ErrorCategory
		severity ErrorSeverity
	}{
		{"validation", ValidationError("x").Build(), CategoryValidation, SeverityWarning},
		{"input", InputError("x").Build(), CategoryInput, SeverityFatal},
		{"config", ConfigError("x").Build(), CategoryConfig, SeverityFatal},
		{"filesystem", FileSystemError("x").Build(), CategoryFileSystem, SeverityFatal},
		{"render", RenderError("x").Build(), CategoryRender, SeverityError},
		{"internal", InternalError("x").Build(), CategoryInternal, SeverityFatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.severity, tt.err.Severity())
		})
	}
}
