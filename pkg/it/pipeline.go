package it

import (
	"github.com/ib-77/itx/pkg/it/value"
)

// Step is a single transformation of subject v under receiver recv.
// A nil Step is the identity.
type Step func(recv, v any) any

// Pipeline is an immutable chain of steps. The zero value is the identity.
type Pipeline struct {
	step Step
}

// Identity returns the root pipeline, which returns its subject unchanged.
func Identity() Pipeline {
	return Pipeline{}
}

// Self returns a pipeline that yields its receiver and ignores the subject.
// Invoke it with CallOn or Bind.
func Self() Pipeline {
	return Pipeline{step: selfStep}
}

func selfStep(recv, _ any) any {
	return recv
}

// Decorate turns fn into a Pipeline without changing what it computes.
// fn may be anything Compose accepts.
func Decorate(fn any) Pipeline {
	return Pipeline{step: lift("decorate", fn)}
}

// Compose returns h(recv, v) = b(recv, a(recv, v)).
func Compose(a, b Step) Step {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(recv, v any) any {
		return b(recv, a(recv, v))
	}
}

// Compose extends p with next as the following step.
func (p Pipeline) Compose(next any) Pipeline {
	return p.then(lift("compose", next))
}

func (p Pipeline) then(s Step) Pipeline {
	return Pipeline{step: Compose(p.step, s)}
}

// Step returns the composed step of p.
func (p Pipeline) Step() Step {
	if p.step == nil {
		return identityStep
	}
	return p.step
}

// Call runs p on v with no receiver.
func (p Pipeline) Call(v any) any {
	return p.CallOn(nil, v)
}

// CallOn runs p on v with recv as the receiver of every step.
func (p Pipeline) CallOn(recv, v any) any {
	if p.step == nil {
		return v
	}
	return p.step(recv, v)
}

// Bind returns a no-argument function running p against recv.
func (p Pipeline) Bind(recv any) func() any {
	return func() any {
		return p.CallOn(recv, nil)
	}
}

// Func returns p as a plain unary function.
func (p Pipeline) Func() func(any) any {
	return p.Call
}

// Predicate returns p as a boolean test on its result's truthiness.
func (p Pipeline) Predicate() func(any) bool {
	return func(v any) bool {
		return value.Truthy(p.Call(v))
	}
}

// Try runs p on v and returns a fault raised by any step as an error.
func Try(p Pipeline, v any) (out any, err error) {
	defer value.Catch(&err)
	return p.Call(v), nil
}

// TryOn is Try with an explicit receiver.
func TryOn(p Pipeline, recv, v any) (out any, err error) {
	defer value.Catch(&err)
	return p.CallOn(recv, v), nil
}
