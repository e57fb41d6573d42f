package gatherdb

import "errors"

// ErrNotFound indicates no board exists for the guild.
var ErrNotFound = errors.New("gather state not found")
