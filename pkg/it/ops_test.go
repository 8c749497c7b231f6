package it

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/itx/pkg/it/value"
)

type record struct {
	A   any
	Z   string
	Lol string
}

func (r record) Shout() string { return strings.ToUpper(r.A.(string)) }

func (r record) GetArgs(args ...any) []any { return args }

func (r *record) GetContext() *record { return r }

func getArgs(args ...any) []any { return args }

func TestGet_Chain(t *testing.T) {
	t.Parallel()

	a := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	b := record{A: "this is a test", Z: "test"}

	assert.Equal(t, 1, Get("a").Call(a))
	assert.Equal(t, a["b"], Get("b").Call(a))
	assert.Equal(t, "this is a test", Get("A").Call(b))
	assert.Equal(t, 2, Get("b").Get("c").Call(a))
	assert.Equal(t, 4, Get("Z").Get("length").Call(b))
	assert.Equal(t, "tall", Get("length").Call(map[string]any{"length": "tall", "other": 1}))
	assert.Equal(t, 2, Get("length").Call(map[string]any{"a": 1, "b": 2}))
	assert.Equal(t, 5, Get("length").Call("héllo"))
	assert.Equal(t, "é", Get(1).Call("héllo"))
	assert.Equal(t, Invoke("Len").Call("héllo"), Get("length").Call("héllo"))
}

func TestGet_NilSubjectFaults(t *testing.T) {
	t.Parallel()

	err := catch(func() { Get("a").Get("b").Call(map[string]any{}) })
	assert.ErrorIs(t, err, value.ErrNilSubject)
}

func TestSet(t *testing.T) {
	t.Parallel()

	object := map[string]any{"a": 1, "b": 2, "c": 3}

	out := Set("a", 555).Call(object)
	assert.Equal(t, 555, object["a"])
	assert.Equal(t, object, out)

	r := &record{}
	assert.Same(t, r, Set("Z", "zed").Call(r))
	assert.Equal(t, "zed", r.Z)

	assert.Equal(t, "zed", Set("Lol", "x").Get("Z").Call(r))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	object := map[string]any{"a": 1, "b": 2, "c": 3}

	out := Delete("a").Call(object)
	assert.NotContains(t, object, "a")
	assert.Equal(t, object, out)
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	b := record{A: "this is a test"}
	c := &record{}

	assert.Equal(t, "THIS IS A TEST", Get("A").Invoke("ToUpper").Call(b))
	assert.Equal(t, "THIS IS A TEST", Invoke("Shout").Call(b))
	assert.Equal(t, "THIS IS A TEST", Get("A").Invoke(strings.ToUpper).Call(b))
	assert.Equal(t, "100", Invoke(strconv.FormatInt, 36).Call(int64(1296)))
	assert.Equal(t, "T", Invoke("Substr", 0, 1).Invoke("ToUpper").Call("this"))

	assert.Equal(t, []any{}, Invoke("GetArgs").Call(c))
	assert.Equal(t, []any{55555}, Invoke("GetArgs", 55555).Call(c))
	assert.Equal(t, []any{"w", "t", "f"}, Invoke("GetArgs", "w", "t", "f").Call(c))

	assert.Equal(t, []any{c}, Invoke(getArgs).Call(c))
	assert.Equal(t, []any{c, 55555}, Invoke(getArgs, 55555).Call(c))
	assert.Equal(t, []any{c, "w", "t", "f"}, Invoke(getArgs, "w", "t", "f").Call(c))

	err := catch(func() { Invoke("Missing").Call(b) })
	assert.ErrorIs(t, err, value.ErrNoSuchMember)
	err = catch(func() { Invoke(3) })
	assert.ErrorIs(t, err, value.ErrInvalidSelector)
}

func TestInvoke_PipelineSelectorRunsOnSubject(t *testing.T) {
	t.Parallel()

	c := &record{A: "ctx"}

	assert.Same(t, c, Invoke(Self()).Call(c))
	assert.Equal(t, "ctx", Invoke(Self().Get("A")).Call(c))
	assert.Equal(t, "arg", Invoke(Identity(), "arg").Call(c))

	pair := func(recv, v any) any { return []any{recv, v} }
	assert.Equal(t, []any{c, c}, Invoke(pair).Call(c))
	assert.Equal(t, []any{c, "arg"}, Invoke(pair, "arg").Call(c))
}

func TestInvoke_ArgsAreSnapshotted(t *testing.T) {
	t.Parallel()

	args := []any{1, 2}
	p := Post("GetArgs", args)
	args[0] = 99

	assert.Equal(t, []any{1, 2}, p.Call(record{}))
}

func TestPost(t *testing.T) {
	t.Parallel()

	c := &record{}

	assert.Equal(t, []any{}, Post("GetArgs", nil).Call(c))
	assert.Equal(t, []any{3}, Post("GetArgs", []any{3}).Call(c))
	assert.Equal(t, []any{2, 3}, Post("GetArgs", []any{2, 3}).Call(c))
	assert.Equal(t, []any{1, 2, 3}, Post("GetArgs", []any{1, 2, 3}).Call(c))
	assert.Same(t, c, Post("GetContext", nil).Call(c))
}

func TestApplyArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{}, ApplyArgs(nil).Call(getArgs))
	assert.Equal(t, []any{3}, ApplyArgs([]any{3}).Call(getArgs))
	assert.Equal(t, []any{1, 2, 3}, ApplyArgs([]any{1, 2, 3}).Call(getArgs))
	assert.Equal(t, []any{1, 2, 3}, CallWithArgs(1, 2, 3).Call(getArgs))
	assert.Equal(t, []any{2, 3}, CallWithArgs(2, 3).Call(getArgs))
	assert.Equal(t, 9, CallWithArgs(10).Call(Sub.With(1)))
	assert.Equal(t, 9, CallWithArgs(10, 1).Call(Sub))

	err := catch(func() { CallWithArgs(1).Call("not a func") })
	assert.ErrorIs(t, err, value.ErrNotCallable)
}

func TestDefaultTo(t *testing.T) {
	t.Parallel()

	for _, falsy := range []any{0, "", false, nil, 0.0} {
		assert.Equal(t, "d", DefaultTo("d").Call(falsy), "subject %#v", falsy)
	}
	assert.Equal(t, 444, DefaultTo(1).Call(444))
	assert.Equal(t, false, DefaultTo(false).Call(0))
	assert.Equal(t, "x", DefaultTo("d").Call("x"))
}

func TestRunIfTruthy(t *testing.T) {
	t.Parallel()

	calls := 0
	stub := func(v any) any {
		calls++
		return v
	}

	for _, falsy := range []any{nil, false, 0, ""} {
		assert.Equal(t, falsy, RunIfTruthy(stub).Call(falsy))
	}
	assert.Zero(t, calls)

	assert.Equal(t, false, RunIfTruthy(Invoke("Missing")).Call(false))
	assert.Equal(t, 1, RunIfTruthy(Get("a")).Call(map[string]any{"a": 1}))
	assert.Equal(t, 1, RunIfTruthy("a").Call(map[string]any{"a": 1}))
	assert.Equal(t, 4, Get("Z").RunIfTruthy(Get("length")).Call(record{Z: "test"}))
	assert.Equal(t, "", Get("Z").RunIfTruthy(Get("length")).Call(record{}))

	assert.Equal(t, "ok", RunIfTruthy(stub).Call("ok"))
	assert.Equal(t, 1, calls)
}

func TestNegate(t *testing.T) {
	t.Parallel()

	c := &flags{T: true}

	assert.Equal(t, false, Negate(Identity()).Call(1))
	assert.Equal(t, true, Negate(Identity()).Call(0))
	assert.Equal(t, false, Negate().Call(1))
	assert.Equal(t, true, Negate().Call(0))

	assert.Equal(t, false, Negate(Get("T")).Call(c))
	assert.Equal(t, true, Negate(Get("F")).Call(c))
	assert.Equal(t, false, Negate("T").Call(c))
	assert.Equal(t, false, Get("T").Negate().Call(c))
	assert.Equal(t, true, Get("F").Negate().Call(c))

	assert.Equal(t, false, Self().Negate(Get("T")).Bind(c)())
	assert.Equal(t, true, Self().Negate(Get("F")).Bind(c)())
	assert.Equal(t, false, Self().Get("T").Negate().Bind(c)())
	assert.Equal(t, true, Self().Get("F").Negate().Bind(c)())

	err := catch(func() { Negate("a", "b") })
	assert.ErrorIs(t, err, value.ErrArity)
}

func TestSideEffect(t *testing.T) {
	t.Parallel()

	obj := map[string]any{"a": 1}

	assert.Equal(t, obj, SideEffect(Set("a", 555)).Call(obj))
	assert.Equal(t, 555, obj["a"])
	assert.Equal(t, 1234, SideEffect(Set("a", 1234)).Get("a").Call(obj))

	seen := 0
	out := SideEffect(func(v any) any { seen = v.(int); return "dropped" }).Call(7)
	assert.Equal(t, 7, out)
	assert.Equal(t, 7, seen)
}

type box struct {
	Value any
}

func newBox(v any) *box { return &box{Value: v} }

func TestInstantiateAs(t *testing.T) {
	t.Parallel()

	z := MapOver(InstantiateAs(newBox)).Call([]any{1, 2, "hello"}).([]any)
	require.Len(t, z, 3)
	for i, want := range []any{1, 2, "hello"} {
		b, ok := z[i].(*box)
		require.True(t, ok, "element %d is %T", i, z[i])
		assert.Equal(t, want, b.Value)
	}

	err := catch(func() { InstantiateAs("box") })
	assert.ErrorIs(t, err, value.ErrInvalidSelector)
}
