package repository

import "errors"

// ErrNotFound is returned when a lookup or guarded write matches no document.
var ErrNotFound = errors.New("not found")
