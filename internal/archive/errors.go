package archive

import "errors"

// ErrRenderNotFound is returned when no archived render exists with the
// requested ID.
var ErrRenderNotFound = errors.New("archived render not found")
