package opset

// UnaryOp identifies a unary scalar operator applied to one operand.
type UnaryOp uint8

// Unary operators, in stable ordinal order.
const (
	Negate UnaryOp = iota
	Sqrt
	Abs
	Sin
	Cos
	Tan
	Log
	Exp
)

// Ordinal returns the stable small ordinal for op, used by the total
// ordering of node content.
func (op UnaryOp) Ordinal() int { return int(op) }

// String returns a short human-readable name, used by the tree pretty-printer.
func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "Negate"
	case Sqrt:
		return "Sqrt"
	case Abs:
		return "Abs"
	case Sin:
		return "Sin"
	case Cos:
		return "Cos"
	case Tan:
		return "Tan"
	case Log:
		return "Log"
	case Exp:
		return "Exp"
	default:
		return "UnaryOp(?)"
	}
}

// BinaryOp identifies a binary scalar operator applied to two operands.
type BinaryOp uint8

// Binary operators, in stable ordinal order.
const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Pow
	Min
	Max
)

// Ordinal returns the stable small ordinal for op, used by the total
// ordering of node content.
func (op BinaryOp) Ordinal() int { return int(op) }

// IsCommutative reports whether swapping the two operands of op leaves
// its result unchanged. The commutative set is {Add, Multiply, Min, Max}.
func (op BinaryOp) IsCommutative() bool {
	switch op {
	case Add, Multiply, Min, Max:
		return true
	default:
		return false
	}
}

// String returns a short human-readable name, used by the tree pretty-printer.
func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Pow:
		return "Pow"
	case Min:
		return "Min"
	case Max:
		return "Max"
	default:
		return "BinaryOp(?)"
	}
}
