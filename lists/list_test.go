package lists_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironds/errs"
	"ironds/lists"
)

func TestNew_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{"Empty", nil},
		{"Single", []int{7}},
		{"Many", []int{2, 8, 4, 7, 16, 22, 12}},
		{"Duplicates", []int{1, 1, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lists.New(tt.values...)
			assert.Equal(t, len(tt.values), l.Len())
			assert.Equal(t, len(tt.values) == 0, l.IsEmpty())
			if len(tt.values) == 0 {
				assert.Nil(t, l.Head())
				assert.Empty(t, l.ToSlice())
				return
			}
			assert.Equal(t, tt.values, l.ToSlice())
		})
	}
}

func TestNew_DoesNotConsumeInput(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := lists.New(values...)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestGetSet(t *testing.T) {
	l := lists.New(10, 20, 30)

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, l.Set(1, 25))
	require.NoError(t, l.Set(0, 5))
	require.NoError(t, l.Set(2, 35))
	assert.Equal(t, []int{5, 25, 35}, l.ToSlice())
	assert.Equal(t, 3, l.Len())
}

func TestGetSet_Bounds(t *testing.T) {
	l := lists.New(1, 2, 3)
	for _, idx := range []int{-1, 3, 4, 100} {
		_, err := l.Get(idx)
		assert.ErrorIsf(t, err, lists.ErrIndexOutOfBounds, "Get(%d)", idx)
		assert.ErrorIsf(t, err, errs.ErrIndexOutOfRange, "Get(%d)", idx)

		err = l.Set(idx, 99)
		assert.ErrorIsf(t, err, lists.ErrIndexOutOfBounds, "Set(%d)", idx)
	}
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice(), "failed Set must not modify the list")

	empty := lists.New[int]()
	_, err := empty.Get(0)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	assert.ErrorIs(t, empty.Set(0, 1), errs.ErrIndexOutOfRange)
}

func TestRemoveFirst(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		remove  int
		want    []int
		wantErr error
	}{
		{"Middle", []int{2, 8, 4, 7, 16, 22, 12}, 7, []int{2, 8, 4, 16, 22, 12}, nil},
		{"Head", []int{2, 8, 4, 7, 16, 22, 12}, 2, []int{8, 4, 7, 16, 22, 12}, nil},
		{"Tail", []int{2, 8, 4, 7, 16, 22, 12}, 12, []int{2, 8, 4, 7, 16, 22}, nil},
		{"OnlyFirstMatch", []int{1, 3, 1, 3}, 3, []int{1, 1, 3}, nil},
		{"SingleElement", []int{5}, 5, []int{}, nil},
		{"Absent", []int{2, 8, 4, 7, 16, 22, 12}, 99, []int{2, 8, 4, 7, 16, 22, 12}, lists.ErrValueNotFound},
		{"Empty", []int{}, 1, []int{}, lists.ErrEmptyList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lists.New(tt.values...)
			err := lists.RemoveFirst(l, tt.remove)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.ToSlice())
		})
	}
}

func TestRemoveFirst_Categories(t *testing.T) {
	assert.ErrorIs(t, lists.RemoveFirst(lists.New[int](), 1), errs.ErrEmptyContainer)
	assert.ErrorIs(t, lists.RemoveFirst(lists.New(1), 2), errs.ErrNotFound)
}

func TestRemoveFirstFunc(t *testing.T) {
	type pair struct {
		key string
		val int
	}
	l := lists.New(pair{"a", 1}, pair{"b", 2}, pair{"c", 3})
	err := l.RemoveFirstFunc(func(p pair) bool { return p.key == "b" })
	require.NoError(t, err)
	assert.Equal(t, []pair{{"a", 1}, {"c", 3}}, l.ToSlice())
}

func TestInsertListAtFront_Copies(t *testing.T) {
	l := lists.New(3, 4)
	other := lists.New(1, 2)

	l.InsertListAtFront(other)
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, []int{1, 2}, other.ToSlice())

	// the inserted nodes are copies: changing other must not leak into l
	other.Head().Value = 100
	require.NoError(t, other.Set(1, 200))
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, []int{100, 200}, other.ToSlice())
}

func TestInsertListAtFront_EdgeCases(t *testing.T) {
	l := lists.New[int]()
	l.InsertListAtFront(lists.New(1, 2))
	assert.Equal(t, []int{1, 2}, l.ToSlice())

	l.InsertListAtFront(lists.New[int]())
	l.InsertListAtFront(nil)
	assert.Equal(t, []int{1, 2}, l.ToSlice())

	l.InsertListAtFront(l)
	assert.Equal(t, []int{1, 2, 1, 2}, l.ToSlice())
}

func TestInsertChainAtFront(t *testing.T) {
	t.Run("Clone", func(t *testing.T) {
		l := lists.New(9)
		chain := lists.NewNode(1, lists.NewNode(2, nil))
		l.InsertChainAtFront(chain, true)

		assert.Equal(t, []int{1, 2, 9}, l.ToSlice())
		assert.Nil(t, chain.Next.Next, "caller's chain must not be linked into the list")
		assert.NotSame(t, chain, l.Head())
	})

	t.Run("NoClone", func(t *testing.T) {
		l := lists.New(9)
		chain := lists.NewNode(1, lists.NewNode(2, nil))
		l.InsertChainAtFront(chain, false)

		assert.Equal(t, []int{1, 2, 9}, l.ToSlice())
		assert.Same(t, chain, l.Head())
		chain.Value = 7
		assert.Equal(t, []int{7, 2, 9}, l.ToSlice())
	})

	t.Run("Nil", func(t *testing.T) {
		l := lists.New(1)
		l.InsertChainAtFront(nil, true)
		assert.Equal(t, []int{1}, l.ToSlice())
	})
}

// AppendListAtEnd shares nodes with the appended list, InsertListAtFront does not.
func TestAppendListAtEnd_Aliases(t *testing.T) {
	l := lists.New(1, 2)
	other := lists.New(3, 4)

	l.AppendListAtEnd(other)
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, []int{3, 4}, other.ToSlice())

	other.Head().Value = 30
	assert.Equal(t, []int{1, 2, 30, 4}, l.ToSlice())

	other.AppendListAtEnd(lists.New(5))
	assert.Equal(t, []int{1, 2, 30, 4, 5}, l.ToSlice())
}

func TestAppendListAtEnd_EdgeCases(t *testing.T) {
	l := lists.New[int]()
	l.AppendListAtEnd(lists.New(1, 2))
	assert.Equal(t, []int{1, 2}, l.ToSlice())

	l.AppendListAtEnd(nil)
	l.AppendListAtEnd(lists.New[int]())
	assert.Equal(t, []int{1, 2}, l.ToSlice())

	// appending to itself must not create a cycle
	l.AppendListAtEnd(l)
	assert.Equal(t, []int{1, 2, 1, 2}, l.ToSlice())
}

func TestNodeClone(t *testing.T) {
	chain := lists.NewNode("a", lists.NewNode("b", lists.NewNode("c", nil)))
	clone := chain.Clone()

	assert.Equal(t, chain.String(), clone.String())
	for orig, cp := chain, clone; orig != nil; orig, cp = orig.Next, cp.Next {
		assert.NotSame(t, orig, cp)
	}

	var nilNode *lists.Node[string]
	assert.Nil(t, nilNode.Clone())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", lists.New(1, 2, 3).String())
	assert.Equal(t, "[]", lists.New[int]().String())
	assert.Equal(t, "Gareth (2 (<nil>))", lists.NewNode("Gareth", lists.NewNode("2", nil)).String())
}

func TestIteration(t *testing.T) {
	l := lists.New(4, 5, 6)

	var got []int
	for v := range l.Values() {
		got = append(got, v)
		if v == 5 {
			break
		}
	}
	assert.Equal(t, []int{4, 5}, got)

	idx := map[int]int{}
	for i, v := range l.All() {
		idx[i] = v
	}
	assert.Equal(t, map[int]int{0: 4, 1: 5, 2: 6}, idx)
}

func TestLookup(t *testing.T) {
	l := lists.New("x", "y", "z")
	assert.Equal(t, 2, lists.IndexOf(l, "z"))
	assert.Equal(t, -1, lists.IndexOf(l, "w"))
	assert.True(t, lists.Contains(l, "y"))
	assert.False(t, l.ContainsFunc(func(s string) bool { return s == "" }))
}

func TestClone(t *testing.T) {
	l := lists.New(1, 2, 3)
	clone := l.Clone()
	require.NoError(t, l.Set(0, 99))
	assert.Equal(t, []int{1, 2, 3}, clone.ToSlice())
	assert.True(t, lists.New[int]().Clone().IsEmpty())
}
