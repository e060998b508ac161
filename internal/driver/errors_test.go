package driver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Is(t *testing.T) {
	err := fmt.Errorf("datasource main: %w", &ValidationError{Kind: KindMissingDatabase})

	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, KindMissingDatabase, KindOf(err))
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
}

func TestValidationError_Unwrap(t *testing.T) {
	cause := errors.New("bad digit")
	err := &ValidationError{Kind: KindInvalidProperty, Property: "port", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "the port property is invalid for the HyperSQL driver: bad digit", err.Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "MissingDatabase", KindMissingDatabase.String())
	assert.Equal(t, "InvalidProtocol", KindInvalidProtocol.String())
	assert.Equal(t, "MissingHost", KindMissingHost.String())
	assert.Equal(t, "InvalidProperty", KindInvalidProperty.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
