package loader

import "errors"

// ErrInvalidFile is returned when a translation file cannot be decoded into
// a flat id-to-template mapping.
var ErrInvalidFile = errors.New("loader: invalid translation file")
