package binder

import "errors"

var (
	// ErrBinderNotApplicable means the request carries nothing for this binder.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrInvalidForm    = errors.New("invalid form data")
	ErrInvalidQuery   = errors.New("invalid query parameter")
	ErrInvalidSignals = errors.New("invalid datastar signals")
	ErrInvalidTarget  = errors.New("bind target must be a non-nil pointer to struct")
)
