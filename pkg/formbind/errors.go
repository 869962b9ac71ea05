package formbind

import "errors"

var (
	ErrNilSurface    = errors.New("formbind: surface is nil")
	ErrInputNotFound = errors.New("formbind: password input not found")
	ErrPanelCreate   = errors.New("formbind: failed to create feedback panel")
)
