package rps

import "errors"

// ErrInvalidMove is returned for input outside rock, paper and scissors.
var ErrInvalidMove = errors.New("invalid move")
