package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ib-77/itx/pkg/it"
	"github.com/ib-77/itx/pkg/it/value"
)

var (
	ErrInvalidName      = errors.New("invalid operation name")
	ErrDuplicate        = errors.New("operation already registered")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArity            = errors.New("wrong number of arguments")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// Factory builds the step of an operation from its arguments.
type Factory func(args ...any) (it.Step, error)

// Arity bounds the argument count of an operation. Max < 0 means unbounded.
type Arity struct {
	Min int
	Max int
}

func Exactly(n int) Arity      { return Arity{Min: n, Max: n} }
func Between(lo, hi int) Arity { return Arity{Min: lo, Max: hi} }
func AtLeast(n int) Arity      { return Arity{Min: n, Max: -1} }

// Accepts reports whether n arguments are allowed.
func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("%d+", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	}
	return fmt.Sprintf("%d-%d", a.Min, a.Max)
}

// Entry is a registered operation.
type Entry struct {
	ID           uuid.UUID
	Name         string
	Arity        Arity
	Factory      Factory
	RegisteredAt time.Time
}

type Option func(*Registry)

// WithLogger sets the logger used for registration and extension events.
func WithLogger(logger logr.Logger) Option {
	return func(r *Registry) {
		r.log = logger
	}
}

type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	aliases map[string]string
	log     logr.Logger
}

func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Entry),
		aliases: make(map[string]string),
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds factory under name.
func (r *Registry) Register(name string, arity Arity, factory Factory) (Entry, error) {
	if !validName(name) {
		return Entry{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}
	if factory == nil {
		return Entry{}, errors.Wrapf(ErrInvalidArgument, "nil factory for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return Entry{}, errors.Wrapf(ErrDuplicate, "%q", name)
	}
	e := Entry{
		ID:           uuid.New(),
		Name:         name,
		Arity:        arity,
		Factory:      factory,
		RegisteredAt: time.Now().UTC(),
	}
	r.entries[name] = e
	r.log.V(2).Info("registered operation", "name", name, "arity", arity.String(), "id", e.ID.String())
	return e, nil
}

// Alias makes alias resolve to the operation registered as target.
func (r *Registry) Alias(alias, target string) error {
	if !validName(alias) {
		return errors.Wrapf(ErrInvalidName, "%q", alias)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(alias) {
		return errors.Wrapf(ErrDuplicate, "%q", alias)
	}
	if _, ok := r.entries[target]; !ok {
		return errors.Wrapf(ErrUnknownOperation, "alias %q of %q", alias, target)
	}
	r.aliases[alias] = target
	return nil
}

func (r *Registry) taken(name string) bool {
	_, entry := r.entries[name]
	_, alias := r.aliases[name]
	return entry || alias
}

// Lookup returns the entry for name, following aliases.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[name]; ok {
		name = target
	}
	e, ok := r.entries[name]
	return e, ok
}

// Names returns every registered name and alias, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries)+len(r.aliases))
	for name := range r.entries {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entries returns the registered operations sorted by name, without aliases.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// AliasesOf returns the aliases pointing at name, sorted.
func (r *Registry) AliasesOf(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for alias, target := range r.aliases {
		if target == name {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}

// Extend appends the operation name, built from args, to p. Faults raised
// while building the step are returned as errors.
func (r *Registry) Extend(p it.Pipeline, name string, args ...any) (out it.Pipeline, err error) {
	e, ok := r.Lookup(name)
	if !ok {
		return p, errors.Wrapf(ErrUnknownOperation, "%q", name)
	}
	if !e.Arity.Accepts(len(args)) {
		return p, errors.Wrapf(ErrArity, "%s takes %s arguments, got %d", name, e.Arity, len(args))
	}

	out = p
	defer value.Catch(&err)

	step, err := e.Factory(args...)
	if err != nil {
		return p, errors.Wrapf(err, "building %s", name)
	}
	r.log.V(2).Info("extending pipeline", "operation", name, "args", len(args))
	return p.Compose(step), nil
}

// Call is one named operation with its arguments.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return c.Name + " " + strings.Join(parts, ", ")
}

// Build chains calls onto the identity pipeline.
func (r *Registry) Build(calls ...Call) (it.Pipeline, error) {
	p := it.Identity()
	for i, c := range calls {
		var err error
		p, err = r.Extend(p, c.Name, c.Args...)
		if err != nil {
			return it.Identity(), errors.Wrapf(err, "step %d", i)
		}
	}
	return p, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !(c == '_' || c == '-' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
