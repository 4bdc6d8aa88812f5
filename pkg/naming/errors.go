package naming

import "errors"

// ErrEmptyName is returned when a name contains no word tokens.
var ErrEmptyName = errors.New("invalid empty collection name")
