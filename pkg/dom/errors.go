package dom

import "errors"

var (
	ErrNilElement     = errors.New("dom: nil element")
	ErrForeignElement = errors.New("dom: element belongs to another surface")
	ErrHierarchy      = errors.New("dom: node cannot be inserted into its own subtree")
	ErrParse          = errors.New("dom: failed to parse html")
	ErrRender         = errors.New("dom: failed to render html")
)
