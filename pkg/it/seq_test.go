package it

import (
	"math"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/itx/pkg/it/value"
)

func TestMapOver(t *testing.T) {
	t.Parallel()

	in := []map[string]any{{"x": 1}, {"x": 2}}

	assert.Equal(t, []any{1, 2}, MapOver(Get("x")).Call(in))
	assert.Equal(t, []any{1, 2}, MapOver("x").Call(in))
	assert.Equal(t, []any{1, 2}, Pluck("x").Call(in))
	assert.Equal(t, []map[string]any{{"x": 1}, {"x": 2}}, in)

	numbers := []int{3, 1, 4}
	assert.Equal(t, []any{3, 1, 4}, MapOver().Call(numbers))
	assert.Equal(t, []any{6, 2, 8}, MapOver(Mul.With(2)).Call(numbers))
	assert.Equal(t, []int{3, 1, 4}, numbers)

	err := catch(func() { MapOver().Call(42) })
	assert.ErrorIs(t, err, value.ErrNotSequence)
}

func TestSelectWhere(t *testing.T) {
	t.Parallel()

	strs := []any{"this", "", "is", nil, "a"}
	people := []any{
		map[string]any{"name": "a", "admin": true},
		map[string]any{"name": "b", "admin": false},
	}

	assert.Equal(t, []any{"this", "is", "a"}, SelectWhere().Call(strs))
	assert.Equal(t, []any{people[0]}, SelectWhere("admin").Call(people))
	assert.Equal(t, []any{people[1]}, SelectWhere(Negate("admin")).Call(people))
	assert.Equal(t, []any{4, 5}, SelectWhere(Gt.With(3)).Call([]int{3, 1, 4, 1, 5}))
	assert.Len(t, strs, 5)
}

func TestReduceWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, ReduceWith(Add).Call([]int{1, 2, 3, 4}))
	assert.Equal(t, 7, ReduceWith(Add).Call([]int{7}))
	assert.Equal(t, "abc", ReduceWith(func(a, b any) any { return a.(string) + b.(string) }).Call([]string{"a", "b", "c"}))
	assert.Equal(t, 5, ReduceWith(func(a, b int) int { return max(a, b) }).Call([]int{3, 5, 1}))
	assert.Equal(t, 4, Pluck("n").ReduceWith(Sub).Call([]any{
		map[string]any{"n": 10}, map[string]any{"n": 4}, map[string]any{"n": 2},
	}))

	err := catch(func() { ReduceWith(Add).Call([]int{}) })
	assert.ErrorIs(t, err, value.ErrEmptyReduce)
	err = catch(func() { ReduceWith(3) })
	assert.ErrorIs(t, err, value.ErrInvalidSelector)
}

type counter struct{ N int }

func (c counter) Plus(o counter) counter { return counter{N: c.N + o.N} }

func TestReduceWith_MethodName(t *testing.T) {
	t.Parallel()

	total := ReduceWith("Plus").Call([]counter{{1}, {2}, {3}})
	assert.Equal(t, counter{N: 6}, total)
}

func TestSortBy(t *testing.T) {
	t.Parallel()

	strs := []string{"this", "is", "a", "Book"}

	assert.Equal(t, []any{"Book", "a", "is", "this"}, SortBy().Call(strs))
	assert.Equal(t, []any{"a", "is", "this", "Book"}, SortBy("length").Call(strs))
	assert.Equal(t, []any{"a", "Book", "is", "this"}, SortBy(Invoke("ToUpper")).Call(strs))
	assert.Equal(t, []string{"this", "is", "a", "Book"}, strs)
}

func TestSortBy_ReceiverKey(t *testing.T) {
	t.Parallel()

	ranks := map[string]any{"gold": 1, "silver": 2, "bronze": 3}
	rank := func(recv, v any) any { return value.Get(recv, v) }
	medals := []string{"bronze", "gold", "silver"}

	assert.Equal(t, []any{"gold", "silver", "bronze"}, SortBy(rank).CallOn(ranks, medals))
	assert.Equal(t, []any{"gold", "silver", "bronze"}, Self().Get("medals").SortBy(rank).CallOn(
		map[string]any{"medals": medals, "gold": 1, "silver": 2, "bronze": 3}, nil))

	sorted := slices.Clone(medals)
	slices.SortFunc(sorted, SortFunc[string](CompareByOn(ranks, rank)))
	assert.Equal(t, []string{"gold", "silver", "bronze"}, sorted)

	byName := slices.Clone(medals)
	slices.SortFunc(byName, SortFunc[string](CompareByOn(ranks)))
	assert.Equal(t, []string{"bronze", "gold", "silver"}, byName)
}

func TestBinaryOperators(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		p    Pipeline
		in   any
		want any
	}{
		"sub is not commutative": {p: Identity().Sub(1), in: 10, want: 9},
		"div":                    {p: Identity().Div(4), in: 2.0, want: 0.5},
		"add":                    {p: Identity().Add(1), in: 1, want: 2},
		"mul":                    {p: Identity().Mul(3), in: 2, want: 6},
		"concat":                 {p: Identity().Add("!"), in: "hi", want: "hi!"},
		"eq loose":               {p: Identity().Eq("1"), in: 1, want: true},
		"neq loose":              {p: Identity().Neq(1.0), in: 1, want: false},
		"strict eq":              {p: Identity().StrictEq("1"), in: 1, want: false},
		"strict neq":             {p: Identity().StrictNeq(2), in: 1, want: true},
		"gt":                     {p: Identity().Gt(1), in: 10, want: true},
		"gte":                    {p: Identity().Gte(10), in: 10, want: true},
		"lt":                     {p: Identity().Lt(1), in: 10, want: false},
		"lte strings":            {p: Identity().Lte("b"), in: "a", want: true},
		"nan has no order":       {p: Identity().Lt(1), in: math.NaN(), want: false},
		"static builder":         {p: Sub.With(1), in: 10, want: 9},
		"chained":                {p: Get("n").Mul(2).Sub(1), in: map[string]any{"n": 5}, want: 9},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Call(tc.in))
		})
	}
}

func TestBinaryOperators_Immediate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, Sub(10, 1))
	assert.Equal(t, -9, Sub(1, 10))
	assert.Equal(t, true, Lt(1, 2))
	assert.Equal(t, false, StrictEq(1, 1.0))
	assert.Equal(t, 2.5, Div(5.0, 2))
}

func TestCompareBy(t *testing.T) {
	t.Parallel()

	book := []any{
		map[string]any{"first": "Sifwa"},
		map[string]any{"first": "Moc"},
		map[string]any{"first": "Diblacbo"},
	}

	byLen := CompareBy(Get("first").Get("length"))
	sorted := slices.Clone(book)
	slices.SortStableFunc(sorted, byLen)
	assert.Equal(t, []any{book[1], book[0], book[2]}, sorted)

	slices.SortStableFunc(sorted, byLen.Reverse())
	assert.Equal(t, []any{book[2], book[0], book[1]}, sorted)

	assert.Equal(t, -1, CompareBy()(1, 2))
	assert.Equal(t, 1, CompareBy().Reverse()(1, 2))
	assert.Equal(t, 0, CompareBy("first")(book[0], book[0]))

	nums := []int{3, 1, 4, 1, 5}
	slices.SortFunc(nums, SortFunc[int](CompareBy()))
	assert.Equal(t, []int{1, 1, 3, 4, 5}, nums)

	words := []string{"b", "C", "a"}
	lower := CompareBy(Invoke("ToLower"))
	sort.Slice(words, func(i, j int) bool { return lower.Less(words[i], words[j]) })
	assert.Equal(t, []string{"a", "b", "C"}, words)
}

func TestTrace(t *testing.T) {
	t.Parallel()

	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	out := Get("a").Trace(logger, "got a").Add(1).Call(map[string]any{"a": 1})
	assert.Equal(t, 2, out)
	require.Len(t, lines, 1)
	assert.True(t, strings.Contains(lines[0], `"msg"="got a"`), lines[0])
	assert.True(t, strings.Contains(lines[0], `"value"=1`), lines[0])

	quiet := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})
	Trace(quiet, "hidden").Call(1)
	assert.Len(t, lines, 1)
}
