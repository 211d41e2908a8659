package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome_PresenceAndExtraction(t *testing.T) {
	t.Parallel()
	o := Some(8)

	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())
	assert.Equal(t, 8, o.Unwrap())
	assert.Equal(t, 8, o.UnwrapOr(0))

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 8, v)
}

func TestNone_PresenceAndDefault(t *testing.T) {
	t.Parallel()
	o := None[int]()

	assert.False(t, o.IsSome())
	assert.True(t, o.IsNone())
	assert.Equal(t, 0, o.UnwrapOr(0))
	assert.Equal(t, 7, o.UnwrapOr(7))

	_, ok := o.Get()
	assert.False(t, ok)
}

func TestUnwrap_PanicsOnNone(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, ErrNoneUnwrap.Error(), func() {
		None[int]().Unwrap()
	})
}

func TestZeroValue_BehavesAsNone(t *testing.T) {
	t.Parallel()
	var o Option[int]

	assert.True(t, o.IsNone())
	assert.Equal(t, 3, o.UnwrapOr(3))
}

func TestMatch_DispatchesBySide(t *testing.T) {
	t.Parallel()

	got := Match(Some(2),
		func(v int) string { return "some" },
		func() string { return "none" })
	assert.Equal(t, "some", got)

	got = Match(None[int](),
		func(v int) string { return "some" },
		func() string { return "none" })
	assert.Equal(t, "none", got)
}

func TestMap_AppliesOnSomeOnly(t *testing.T) {
	t.Parallel()
	calls := 0
	double := func(x int) int { calls++; return x * 2 }

	mapped := Map(Some(8), double)
	require.True(t, mapped.IsSome())
	assert.Equal(t, 16, mapped.Unwrap())
	assert.Equal(t, 1, calls)

	assert.True(t, Map(None[int](), double).IsNone())
	assert.Equal(t, 1, calls, "mapper must not run on None")
}

func TestFlatMap_NoDoubleWrapping(t *testing.T) {
	t.Parallel()
	calls := 0
	half := func(x int) Option[int] {
		calls++
		if x%2 != 0 {
			return None[int]()
		}
		return Some(x / 2)
	}

	// left identity: Some(v).FlatMap(f) is structurally f(v)
	got := FlatMap(Some(8), half)
	want := half(8)
	require.Equal(t, want.Tag(), got.Tag())
	assert.Equal(t, want.Unwrap(), got.Unwrap())

	assert.True(t, FlatMap(Some(3), half).IsNone())

	calls = 0
	assert.True(t, FlatMap(None[int](), half).IsNone())
	assert.Equal(t, 0, calls, "binder must not run on None")
}

func TestOfPtr(t *testing.T) {
	t.Parallel()

	n := 5
	assert.Equal(t, 5, OfPtr(&n).Unwrap())
	assert.True(t, OfPtr[int](nil).IsNone())
}

func findEven(nums []int) Option[int] {
	for _, n := range nums {
		if n%2 == 0 {
			return Some(n)
		}
	}
	return None[int]()
}

func TestFindEven_Scenarios(t *testing.T) {
	t.Parallel()

	found := findEven([]int{1, 3, 5, 7, 8, 9})
	require.True(t, found.IsSome())
	assert.Equal(t, 8, found.UnwrapOr(0))
	assert.Equal(t, 16, Map(found, func(x int) int { return x * 2 }).Unwrap())

	missing := findEven([]int{1, 3, 5, 7, 9})
	require.True(t, missing.IsNone())
	assert.Equal(t, 0, missing.UnwrapOr(0))
	require.PanicsWithError(t, ErrNoneUnwrap.Error(), func() {
		missing.Unwrap()
	})
}
