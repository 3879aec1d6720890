package appraisal

import (
	"errors"
	"fmt"
)

// ErrInvalidDomainName is returned when a name is empty after normalization.
var ErrInvalidDomainName = errors.New("invalid domain name")

// InvalidDomainNameError carries the rejected input. It unwraps to ErrInvalidDomainName.
type InvalidDomainNameError struct {
	Input string
}

func (e *InvalidDomainNameError) Error() string {
	return fmt.Sprintf("invalid domain name %q: empty after normalization", e.Input)
}

func (e *InvalidDomainNameError) Unwrap() error {
	return ErrInvalidDomainName
}
