package partition

import "errors"

var (
	ErrMissingArgument   = errors.New("missing argument")
	ErrMalformedArgument = errors.New("malformed argument")
	ErrOutOfDomain       = errors.New("argument out of domain")
	ErrOutOfRange        = errors.New("argument out of range")
)
