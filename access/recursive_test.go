package access

import (
	"testing"

	"rvec/types"
)

func nested() *types.Vector {
	inner := types.NewList(dbls(10, 20), strs("x")).WithNames("b", "c")
	return types.NewList(inner, dbls(1)).WithNames("a", "d")
}

func TestSubscriptRecursive(t *testing.T) {
	l := nested()
	tests := []struct {
		name string
		path types.Value
		want types.Value
		code types.ErrorCode
	}{
		{"by names", strs("a", "b"), dbls(10, 20), types.E_NONE},
		{"by indices", ints(1, 2), strs("x"), types.E_NONE},
		{"into atomic", dbls(1, 1, 2), dbls(20), types.E_NONE},
		{"missing leaf", strs("a", "z"), types.Null, types.E_NONE},
		{"atomic leaf out of bounds", ints(1, 1, 5), nil, types.E_SUBSCRIPT_BOUNDS},
		{"descend through atomic", ints(2, 1, 1), nil, types.E_RECURSIVE_INDEXING_FAILED},
		{"unknown intermediate", strs("z", "b"), nil, types.E_NO_SUCH_INDEX},
		{"intermediate out of bounds", ints(5, 1), nil, types.E_NO_SUCH_INDEX},
		{"list path", types.NewList(dbls(1), dbls(1)), nil, types.E_INVALID_SUBSCRIPT_TYPE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(nil, l, pos(tt.path), SubscriptOptions())
			if tt.code != types.E_NONE {
				expectCode(t, err, tt.code)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expectValue(t, tt.want, got)
		})
	}
}

func TestSubscriptRecursiveLevels(t *testing.T) {
	l := nested()

	_, err := Extract(nil, l, pos(ints(2, 1, 1)), SubscriptOptions())
	if err == nil || err.Error() != "recursive indexing failed at level 2" {
		t.Errorf("unexpected error %v", err)
	}
	_, err = Extract(nil, l, pos(strs("a", "z", "q")), SubscriptOptions())
	if err == nil || err.Error() != "no such index at level 2" {
		t.Errorf("unexpected error %v", err)
	}

	long := types.NewList(types.NewList(dbls(7)).WithNames("value")).WithNames("outer")
	inexact, err := Extract(nil, long, pos(strs("out", "val")), ExtractOptions{Subscript: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectValue(t, dbls(7), inexact)
	_, err = Extract(nil, long, pos(strs("out", "val")), SubscriptOptions())
	expectCode(t, err, types.E_NO_SUCH_INDEX)
}

func TestReplaceRecursive(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		l := nested()
		inner := l.Elements()[0]
		got := assign2(t, l, dbls(5), strs("a", "b"))

		want := types.NewList(
			types.NewList(dbls(5), strs("x")).WithNames("b", "c"),
			dbls(1),
		).WithNames("a", "d")
		expectValue(t, want, got)
		expectValue(t, types.NewList(dbls(10, 20), strs("x")).WithNames("b", "c"), inner)
	})
	t.Run("into atomic leaf", func(t *testing.T) {
		l := nested()
		got := assign2(t, l, dbls(99), ints(1, 1, 2))
		want := types.NewList(
			types.NewList(dbls(10, 99), strs("x")).WithNames("b", "c"),
			dbls(1),
		).WithNames("a", "d")
		expectValue(t, want, got)
	})
	t.Run("new name at leaf", func(t *testing.T) {
		l := nested()
		got := assign2(t, l, lgls(T), strs("a", "e"))
		want := types.NewList(
			types.NewList(dbls(10, 20), strs("x"), lgls(T)).WithNames("b", "c", "e"),
			dbls(1),
		).WithNames("a", "d")
		expectValue(t, want, got)
	})
	t.Run("delete", func(t *testing.T) {
		l := nested()
		got := assign2(t, l, types.Null, ints(1, 1))
		want := types.NewList(
			types.NewList(strs("x")).WithNames("c"),
			dbls(1),
		).WithNames("a", "d")
		expectValue(t, want, got)
	})
	t.Run("shared root", func(t *testing.T) {
		l := nested().IncRef().IncRef()
		got := assign2(t, l, dbls(5), ints(2, 1))
		if got == types.Value(l) {
			t.Fatalf("shared list should not be written in place")
		}
		expectValue(t, nested(), l)
	})
	t.Run("owners restored", func(t *testing.T) {
		l := nested()
		inner := l.Elements()[0].(*types.Vector)
		assign2(t, l, dbls(5), ints(1, 1))
		if inner.RefCount() != 0 {
			t.Errorf("replaced intermediate should have no owner, got %d", inner.RefCount())
		}
	})
}

func TestReplaceRecursiveErrors(t *testing.T) {
	tests := []struct {
		name string
		path types.Value
		code types.ErrorCode
	}{
		{"descend through atomic", ints(2, 1, 1), types.E_RECURSIVE_INDEXING_FAILED},
		{"unknown intermediate", strs("z", "b"), types.E_NO_SUCH_INDEX},
		{"NA intermediate", ints(na, 1), types.E_NO_SUCH_INDEX},
		{"atomic leaf NA", ints(1, 1, na), types.E_SUBSCRIPT_BOUNDS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := nested()
			_, err := Replace(nil, l, pos(tt.path), dbls(0), ReplaceOptions{Subscript: true})
			expectCode(t, err, tt.code)
			expectValue(t, nested(), l)
		})
	}
}
