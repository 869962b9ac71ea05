package feedback

import "errors"

var (
	ErrNilSurface = errors.New("feedback: surface is nil")
	ErrNoTarget   = errors.New("feedback: target element is nil")
	ErrNoParent   = errors.New("feedback: target element has no parent")
)
