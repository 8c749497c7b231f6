package value

import (
	"github.com/pkg/errors"
)

var (
	ErrNilSubject         = errors.New("nil subject")
	ErrNoSuchMember       = errors.New("no such member")
	ErrNotAddressable     = errors.New("subject is not addressable")
	ErrNotCallable        = errors.New("value is not callable")
	ErrNotSequence        = errors.New("subject is not a sequence")
	ErrEmptyReduce        = errors.New("reduce of empty sequence with no initial value")
	ErrInvalidSelector    = errors.New("invalid selector")
	ErrArity              = errors.New("wrong number of arguments")
	ErrCallFailed         = errors.New("call failed")
	ErrUnsupportedOperand = errors.New("unsupported operand")
	ErrDivideByZero       = errors.New("integer divide by zero")
)

// Fault is the value a pipeline step panics with when its subject or
// configuration cannot be handled.
type Fault struct {
	Op  string
	Err error
}

func (f *Fault) Error() string {
	return f.Op + ": " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Raise panics with a Fault for op.
func Raise(op string, err error) {
	panic(&Fault{Op: op, Err: err})
}

// Raisef panics with a Fault wrapping sentinel with a formatted message.
func Raisef(op string, sentinel error, format string, args ...any) {
	panic(&Fault{Op: op, Err: errors.Wrapf(sentinel, format, args...)})
}

// Catch stores a recovered *Fault in err. Any other panic is re-raised.
// It must be deferred directly.
func Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(*Fault)
	if !ok {
		panic(r)
	}
	*err = f
}
