package guilddb

import "errors"

// ErrNotFound indicates the guild has no stored configuration.
var ErrNotFound = errors.New("guild config not found")
