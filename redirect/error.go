package redirect

import (
	"errors"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrNilParameter      = errors.New("nil parameter")
	ErrResponseCommitted = errors.New("response already committed")
	ErrTransport         = errors.New("transport failure")
)
