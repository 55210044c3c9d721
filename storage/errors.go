package storage

import "errors"

var ErrInvalidMoves = errors.New("move count must be positive")
