package asg

import (
	"github.com/ranjeethmahankali/symba/asg/eval"
	"github.com/ranjeethmahankali/symba/asg/tree"
)

// Boundary error sentinels, re-exported from the subpackages that define
// them so consumers of this facade need only import "asg".
var (
	// ErrEmptyTree indicates a node slice of length zero was supplied.
	ErrEmptyTree = tree.ErrEmptyTree
	// ErrWrongNodeOrder indicates a node referenced an operand at or
	// after its own index, violating topological order.
	ErrWrongNodeOrder = tree.ErrWrongNodeOrder
	// ErrIndexOutOfRange indicates a node referenced an index outside
	// the bounds of the node slice.
	ErrIndexOutOfRange = tree.ErrIndexOutOfRange
	// ErrNaNConstant indicates a Constant node held a NaN value.
	ErrNaNConstant = tree.ErrNaNConstant

	// ErrVariableNotFound indicates Run encountered a Symbol whose
	// register was never set via SetVar. Use eval.VariableLabel to
	// recover the offending label.
	ErrVariableNotFound = eval.ErrVariableNotFound
	// ErrUninitializedRegister indicates a malformed or non-topological
	// tree: an operand register was read before being written.
	ErrUninitializedRegister = eval.ErrUninitializedRegister
)
