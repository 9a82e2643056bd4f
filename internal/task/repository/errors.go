package repository

import "errors"

var (
	ErrFailedToLoad    = errors.New("failed to load tasks")
	ErrFailedToSave    = errors.New("failed to save tasks")
	ErrCorruptedRecord = errors.New("corrupted task record")
)
