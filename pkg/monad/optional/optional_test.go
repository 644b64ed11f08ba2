package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monad3/pkg/monad"
	"github.com/ib-77/monad3/pkg/monad/laws"
)

var _ monad.Variant[int, Optional[int]] = Optional[int]{}

func halveEven(x int) Optional[int] {
	if x%2 != 0 {
		return Absent[int]()
	}
	return Present(x / 2)
}

func TestOf_IsPresent(t *testing.T) {
	t.Parallel()

	o := Of(0)
	v, ok := o.Get()

	assert.True(t, o.IsPresent())
	assert.False(t, o.IsShortCircuit())
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestBind_PresentDoublesPositive(t *testing.T) {
	t.Parallel()

	o := Present(5).Bind(func(x int) Optional[int] {
		if x > 0 {
			return Present(x * 2)
		}
		return Absent[int]()
	})

	assert.Equal(t, Present(10), o)
}

func TestBind_AbsentShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	o := Absent[int]().Bind(func(x int) Optional[int] {
		calls++
		return Present(x * 2)
	})

	assert.Equal(t, Absent[int](), o)
	assert.True(t, o.IsShortCircuit())
	assert.Zero(t, calls)
}

func TestBind_StaysAbsentForRestOfChain(t *testing.T) {
	t.Parallel()

	calls := 0
	count := func(x int) Optional[int] {
		calls++
		return Present(x)
	}

	o := Present(3).Bind(halveEven).Bind(count).Bind(count)

	assert.True(t, o.IsAbsent())
	assert.Zero(t, calls)
}

func TestBind_PresentNilIsNotAbsent(t *testing.T) {
	t.Parallel()

	o := Bind(Present("key"), func(string) Optional[*int] { return Present[*int](nil) })

	require.True(t, o.IsPresent())
	assert.Nil(t, o.MustGet())
	assert.NotEqual(t, Absent[*int](), o)
}

func TestBind_ChangesType(t *testing.T) {
	t.Parallel()

	users := map[int]string{1: "ann", 2: ""}
	lookup := func(id int) Optional[string] {
		name, ok := users[id]
		return FromOK(name, ok)
	}

	assert.Equal(t, Present("ann"), Bind(Of(1), lookup))
	assert.Equal(t, Present(""), Bind(Of(2), lookup))
	assert.Equal(t, Absent[string](), Bind(Of(3), lookup))
	assert.Equal(t, Absent[string](), Bind(Empty[int](), lookup))
}

func TestFromPtrAndNillable(t *testing.T) {
	t.Parallel()

	n := 4
	var nilSlice []int
	var nilErr error

	assert.Equal(t, Present(4), FromPtr(&n))
	assert.Equal(t, Absent[int](), FromPtr[int](nil))
	assert.True(t, FromNillable(nilSlice).IsAbsent())
	assert.True(t, FromNillable(nilErr).IsAbsent())
	assert.True(t, FromNillable([]int{}).IsPresent())
	assert.True(t, FromNillable(0).IsPresent())
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Present(3).OrElse(9))
	assert.Equal(t, 9, Absent[int]().OrElse(9))
	assert.Equal(t, 8, Absent[int]().OrElseGet(func() int { return 8 }))
	assert.Equal(t, "Present(3)", Present(3).String())
	assert.Equal(t, "Absent", Absent[int]().String())

	assert.PanicsWithValue(t, ErrAbsent, func() { Absent[int]().MustGet() })
}

func TestMapFilterOr(t *testing.T) {
	t.Parallel()

	length := func(s string) int { return len(s) }
	positive := func(x int) bool { return x > 0 }

	assert.Equal(t, Present(5), Map(Present("hello"), length))
	assert.Equal(t, Absent[int](), Map(Absent[string](), length))
	assert.Equal(t, Present(2), Present(2).Filter(positive))
	assert.Equal(t, Absent[int](), Present(-2).Filter(positive))
	assert.Equal(t, Present(1), Absent[int]().Or(Present(1)))
	assert.Equal(t, Present(2), Present(2).Or(Present(1)))
}

func TestFoldTeeJoin(t *testing.T) {
	t.Parallel()

	describe := func(o Optional[int]) string {
		return Fold(o, func(int) string { return "some" }, func() string { return "none" })
	}

	seen := 0
	Present(6).Tee(func(x int) { seen = x })
	Absent[int]().Tee(func(int) { seen = -1 })

	assert.Equal(t, "some", describe(Present(1)))
	assert.Equal(t, "none", describe(Absent[int]()))
	assert.Equal(t, 6, seen)
	assert.Equal(t, Present(1), Join(Present(Present(1))))
	assert.Equal(t, Absent[int](), Join(Present(Absent[int]())))
	assert.Equal(t, Absent[int](), Join(Absent[Optional[int]]()))
}

func TestLaws(t *testing.T) {
	t.Parallel()

	inc := func(x int) Optional[int] { return Present(x + 1) }
	never := func(int) Optional[int] { return Absent[int]() }

	laws.Verify(t, laws.ForMethod(Of[int]),
		[]int{-3, 0, 4, 11},
		[]Optional[int]{Present(0), Present(8), Present(7), Absent[int]()},
		inc, halveEven, never)
}

func TestLaws_PackageBind(t *testing.T) {
	t.Parallel()

	c := laws.Checker[string, Optional[string]]{Of: Of[string], Bind: Bind[string, string]}
	samples := laws.Strings(4)
	nonEmpty := func(s string) Optional[string] { return Present(s).Filter(func(s string) bool { return s != "" }) }
	drop := func(string) Optional[string] { return Empty[string]() }

	laws.Verify(t, c, samples, []Optional[string]{Present(""), Absent[string](), Of(samples[0])}, nonEmpty, drop)
}
