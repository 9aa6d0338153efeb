package flexrect

import "errors"

// Errors returned by the layout entry points. Tree errors from package tree
// (ErrInvalidNode, ErrBorrowed) are wrapped and can be matched with errors.Is.
var (
	// ErrInvalidViewport is returned when the viewport size is negative, NaN or infinite.
	ErrInvalidViewport = errors.New("flexrect: invalid viewport size")

	// ErrRootSizeUnset is returned by ResolveRoot when the root has no Width or Height.
	ErrRootSizeUnset = errors.New("flexrect: root node must set width and height")

	// ErrNotRoot is returned when the node passed as root has a parent.
	ErrNotRoot = errors.New("flexrect: node is not a root")

	// ErrInvalidZRange is returned when WithZRange is given an empty or out-of-order range.
	ErrInvalidZRange = errors.New("flexrect: invalid z range")
)
