package celx

import (
	"github.com/pkg/errors"

	"github.com/ib-77/itx/pkg/it"
	"github.com/ib-77/itx/pkg/it/registry"
)

// Register adds "eval <expr>", which replaces the subject with the value of
// expr, and "where <expr>", which keeps the elements for which expr is truthy.
func Register(r *registry.Registry) error {
	if _, err := r.Register("eval", registry.Exactly(1), factory(func(p *Program) it.Pipeline {
		return p.Pipeline()
	})); err != nil {
		return err
	}

	_, err := r.Register("where", registry.Exactly(1), factory(func(p *Program) it.Pipeline {
		return it.SelectWhere(p.Step())
	}))
	return err
}

func factory(build func(p *Program) it.Pipeline) registry.Factory {
	return func(args ...any) (it.Step, error) {
		expr, ok := args[0].(string)
		if !ok {
			return nil, errors.Wrapf(registry.ErrInvalidArgument, "expression must be a string, got %T", args[0])
		}
		p, err := Compile(expr)
		if err != nil {
			return nil, err
		}
		return build(p).Step(), nil
	}
}
