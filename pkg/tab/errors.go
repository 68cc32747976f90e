package tab

import "errors"

var (
	ErrNotNumeric      = errors.New("not a number")
	ErrInvalidFormat   = errors.New("invalid number format")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrNotEncodable    = errors.New("value can not be encoded")
	ErrUnknownDialect  = errors.New("unknown dialect")
)
