// Package celx turns CEL expressions into pipeline steps. An expression sees
// the subject as `it` and the receiver as `self`.
package celx

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	"github.com/google/cel-go/ext"
	"github.com/pkg/errors"

	"github.com/ib-77/itx/pkg/it"
	"github.com/ib-77/itx/pkg/it/value"
)

var (
	ErrCompile = errors.New("expression compilation failed")
	ErrEval    = errors.New("expression evaluation failed")
)

const (
	subjectVar  = "it"
	receiverVar = "self"
)

var env = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		ext.Strings(),
		ext.Math(),
		cel.CrossTypeNumericComparisons(true),
		cel.Variable(subjectVar, cel.DynType),
		cel.Variable(receiverVar, cel.DynType),
	)
})

// Program is a compiled expression.
type Program struct {
	expr string
	prg  cel.Program
}

func Compile(expr string) (*Program, error) {
	e, err := env()
	if err != nil {
		return nil, errors.Wrap(err, "setup cel env failed")
	}

	ast, issues := e.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrapf(ErrCompile, "`%s`: %v", expr, issues.Err())
	}

	prg, err := e.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(ErrCompile, "`%s` program: %v", expr, err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// MustCompile is like Compile but panics if the expression does not compile.
func MustCompile(expr string) *Program {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Program) String() string {
	return p.expr
}

// Eval runs the expression and converts the result to plain Go values:
// int64, uint64, float64, string, bool, []byte, []any, map[string]any or nil.
func (p *Program) Eval(recv, v any) (any, error) {
	out, _, err := p.prg.Eval(map[string]any{
		subjectVar:  v,
		receiverVar: recv,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrEval, "`%s`: %v", p.expr, err)
	}
	return native(out), nil
}

// Step panics with a *value.Fault when evaluation fails.
func (p *Program) Step() it.Step {
	return func(recv, v any) any {
		out, err := p.Eval(recv, v)
		if err != nil {
			value.Raise("eval", err)
		}
		return out
	}
}

func (p *Program) Pipeline() it.Pipeline {
	return it.Decorate(p.Step())
}

func native(v ref.Val) any {
	switch val := v.(type) {
	case types.Null:
		return nil
	case traits.Mapper:
		out := map[string]any{}
		for i := val.Iterator(); i.HasNext() == types.True; {
			k := i.Next()
			key, ok := k.Value().(string)
			if !ok {
				key = fmt.Sprint(k.Value())
			}
			out[key] = native(val.Get(k))
		}
		return out
	case traits.Lister:
		var out []any
		for i := val.Iterator(); i.HasNext() == types.True; {
			out = append(out, native(i.Next()))
		}
		if out == nil {
			out = []any{}
		}
		return out
	}
	return v.Value()
}
