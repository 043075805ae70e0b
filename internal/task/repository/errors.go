package repository

import "errors"

var (
	ErrFailedToAppend = errors.New("failed to append task record")
	ErrFailedToLoad   = errors.New("failed to load task records")
)
