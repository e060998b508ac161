package driver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is matched by every *ValidationError
var ErrInvalidConfig = errors.New("invalid datasource configuration")

// Kind tells which validation rule a datasource broke
type Kind int

const (
	KindMissingDatabase Kind = iota + 1
	KindInvalidProtocol
	KindMissingHost
	// KindInvalidProperty is reported when a property cannot be read as its expected type
	KindInvalidProperty
)

func (k Kind) String() string {
	switch k {
	case KindMissingDatabase:
		return "MissingDatabase"
	case KindInvalidProtocol:
		return "InvalidProtocol"
	case KindMissingHost:
		return "MissingHost"
	case KindInvalidProperty:
		return "InvalidProperty"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValidationError describes why datasource properties could not be turned into a URL
type ValidationError struct {
	Kind     Kind
	Protocol string   // offending or active protocol, for InvalidProtocol and MissingHost
	Allowed  []string // accepted protocols, for InvalidProtocol
	Property string   // offending property, for InvalidProperty
	Err      error    // underlying decode error, for InvalidProperty
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingDatabase:
		return "the database property is required for the HyperSQL driver"
	case KindInvalidProtocol:
		return fmt.Sprintf("the protocol property is invalid for the HyperSQL driver: [%s]. Available protocols are: %s",
			e.Protocol, strings.Join(e.Allowed, ", "))
	case KindMissingHost:
		return "the host property is required for the HyperSQL driver when using the protocol: " + e.Protocol
	case KindInvalidProperty:
		return fmt.Sprintf("the %s property is invalid for the HyperSQL driver: %v", e.Property, e.Err)
	default:
		return ErrInvalidConfig.Error()
	}
}

// Is makes errors.Is(err, ErrInvalidConfig) true for every validation failure
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// KindOf returns the validation kind carried by err, or 0 if err is not a *ValidationError
func KindOf(err error) Kind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return 0
}
