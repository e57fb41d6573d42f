package resultsdb

import "errors"

// ErrNotFound indicates no result matched the key.
var ErrNotFound = errors.New("result not found")
