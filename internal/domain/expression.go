package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidOperation is the root of the move-rejection taxonomy. The move
// generator recovers from these locally; solver callers never see them.
var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDivideByZero     = fmt.Errorf("%w: division by zero", ErrInvalidOperation)
	ErrInexactDivision  = fmt.Errorf("%w: division result is not an integer", ErrInvalidOperation)
	ErrNegativeResult   = fmt.Errorf("%w: negative intermediate result", ErrInvalidOperation)
)

// ErrOperandsOverlap signals a programmer error: combining two expressions
// that share a source number. It is deliberately not part of the
// ErrInvalidOperation family.
var ErrOperandsOverlap = errors.New("operands share a source number")

// Expression is an immutable binary expression tree over a puzzle's source
// numbers. Leaves carry one source number each, tagged with its index;
// internal nodes combine two disjoint subtrees with an operation. Invalid
// combinations are never materialized, so Value is always defined. Because
// nodes never mutate, subexpressions may be shared freely across search
// branches.
type Expression struct {
	value int
	used  uint64 // bitmask of consumed source indices
	ops   int
	op    Op
	left  *Expression
	right *Expression
}

// NewSource returns a leaf expression for the source number at index idx.
func NewSource(idx, value int) *Expression {
	return &Expression{value: value, used: 1 << uint(idx)}
}

// Value is the evaluated integer result of the expression.
func (e *Expression) Value() int { return e.value }

// Ops is the number of operations in the expression tree.
func (e *Expression) Ops() int { return e.ops }

// Sources is the bitmask of source-number indices the expression consumes.
func (e *Expression) Sources() uint64 { return e.used }

// IsLeaf reports whether the expression is a bare source number.
func (e *Expression) IsLeaf() bool { return e.left == nil }

// Op returns the root operation; meaningless for leaves.
func (e *Expression) Op() Op { return e.op }

// Left returns the left operand subtree, nil for leaves.
func (e *Expression) Left() *Expression { return e.left }

// Right returns the right operand subtree, nil for leaves.
func (e *Expression) Right() *Expression { return e.right }

// Combine builds a new expression from two disjoint expressions. It fails
// with an error wrapping ErrInvalidOperation when the result would violate
// the constraints, and with ErrOperandsOverlap when the operands share a
// source number. Neither operand is modified.
func Combine(op Op, a, b *Expression, c Constraints) (*Expression, error) {
	if a.used&b.used != 0 {
		return nil, ErrOperandsOverlap
	}
	var v int
	switch op {
	case OpAdd:
		v = a.value + b.value
	case OpSubtract:
		v = a.value - b.value
	case OpMultiply:
		v = a.value * b.value
	case OpDivide:
		if b.value == 0 {
			return nil, ErrDivideByZero
		}
		if c.ExactDivision && a.value%b.value != 0 {
			return nil, ErrInexactDivision
		}
		v = a.value / b.value
	default:
		return nil, fmt.Errorf("%w: unknown operation %d", ErrInvalidOperation, int(op))
	}
	if v < 0 && !c.AllowNegative {
		return nil, ErrNegativeResult
	}
	return &Expression{
		value: v,
		used:  a.used | b.used,
		ops:   a.ops + b.ops + 1,
		op:    op,
		left:  a,
		right: b,
	}, nil
}

// Render returns the fully parenthesized human-readable form, e.g.
// "((100 + 6) * 3)". Used only at the boundary.
func (e *Expression) Render() string {
	if e.left == nil {
		return strconv.Itoa(e.value)
	}
	return "(" + e.left.Render() + " " + e.op.String() + " " + e.right.Render() + ")"
}
