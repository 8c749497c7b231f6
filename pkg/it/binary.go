package it

import (
	"github.com/ib-77/itx/pkg/it/value"
)

// Operator is a binary operation. Called with two operands it evaluates
// immediately; With fixes the right-hand operand and yields a pipeline step.
type Operator func(a, b any) any

// With returns a pipeline computing subject OP operand.
func (o Operator) With(operand any) Pipeline {
	return Identity().binary(o, operand)
}

func (p Pipeline) binary(o Operator, operand any) Pipeline {
	return p.then(func(_, v any) any {
		return o(v, operand)
	})
}

var (
	Eq        Operator = func(a, b any) any { return value.LooseEqual(a, b) }
	Neq       Operator = func(a, b any) any { return !value.LooseEqual(a, b) }
	StrictEq  Operator = func(a, b any) any { return value.StrictEqual(a, b) }
	StrictNeq Operator = func(a, b any) any { return !value.StrictEqual(a, b) }
	Gt        Operator = relation(func(c int) bool { return c > 0 })
	Gte       Operator = relation(func(c int) bool { return c >= 0 })
	Lt        Operator = relation(func(c int) bool { return c < 0 })
	Lte       Operator = relation(func(c int) bool { return c <= 0 })
	Add       Operator = value.Add
	Sub       Operator = value.Sub
	Mul       Operator = value.Mul
	Div       Operator = value.Div
)

// relation is false for operands without an order, such as NaN.
func relation(holds func(c int) bool) Operator {
	return func(a, b any) any {
		c, ok := value.Order(a, b)
		return ok && holds(c)
	}
}

func (p Pipeline) Eq(x any) Pipeline        { return p.binary(Eq, x) }
func (p Pipeline) Neq(x any) Pipeline       { return p.binary(Neq, x) }
func (p Pipeline) StrictEq(x any) Pipeline  { return p.binary(StrictEq, x) }
func (p Pipeline) StrictNeq(x any) Pipeline { return p.binary(StrictNeq, x) }
func (p Pipeline) Gt(x any) Pipeline        { return p.binary(Gt, x) }
func (p Pipeline) Gte(x any) Pipeline       { return p.binary(Gte, x) }
func (p Pipeline) Lt(x any) Pipeline        { return p.binary(Lt, x) }
func (p Pipeline) Lte(x any) Pipeline       { return p.binary(Lte, x) }
func (p Pipeline) Add(x any) Pipeline       { return p.binary(Add, x) }
func (p Pipeline) Sub(x any) Pipeline       { return p.binary(Sub, x) }
func (p Pipeline) Mul(x any) Pipeline       { return p.binary(Mul, x) }
func (p Pipeline) Div(x any) Pipeline       { return p.binary(Div, x) }
