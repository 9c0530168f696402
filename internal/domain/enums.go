package domain

// Op is one of the four arithmetic operations a move may apply.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Commutative reports whether operand order is irrelevant for the operation.
func (o Op) Commutative() bool { return o == OpAdd || o == OpMultiply }

// Strategy selects one of the two search implementations.
type Strategy int

const (
	StrategyBruteforce Strategy = iota
	StrategyMinimax
)

func (s Strategy) String() string {
	if s == StrategyMinimax {
		return "minimax"
	}
	return "bruteforce"
}
