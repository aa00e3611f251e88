package tree

import "errors"

// Sentinel errors for Tree construction. Callers should branch on these
// with errors.Is, never on message text.
var (
	// ErrEmptyTree indicates a node slice of length zero was supplied.
	ErrEmptyTree = errors.New("tree: empty node slice")

	// ErrWrongNodeOrder indicates a node referenced an operand at or
	// after its own index, violating topological order.
	ErrWrongNodeOrder = errors.New("tree: operand index not less than node index")

	// ErrIndexOutOfRange indicates a node referenced an index outside
	// the bounds of the node slice.
	ErrIndexOutOfRange = errors.New("tree: operand index out of range")

	// ErrNaNConstant indicates a Constant node held a NaN value. NaN
	// constants break the total ordering used by the Deterministic
	// walker, so construction rejects them.
	ErrNaNConstant = errors.New("tree: NaN constant not allowed")
)
