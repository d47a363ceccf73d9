package apperror

import "errors"

var (
	ErrPlayerQuit     = errors.New("player quit the game")
	ErrMalformedInput = errors.New("malformed input")
)
