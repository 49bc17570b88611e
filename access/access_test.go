package access

import (
	"errors"
	"testing"

	"rvec/types"
)

var (
	na  = types.IntNA
	dNA = types.DoubleNA
	sNA = types.StringNA
	T   = types.True
	F   = types.False
	lNA = types.LogicalNA
)

func pos(vals ...types.Value) []types.Value { return vals }

func ints(vals ...int) *types.Vector { return types.NewInt(vals...) }

func dbls(vals ...float64) *types.Vector { return types.NewDouble(vals...) }

func strs(vals ...string) *types.Vector { return types.NewString(vals...) }

func lgls(vals ...types.Logical) *types.Vector { return types.NewLogical(vals...) }

func seq(from, to int) *types.Vector {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return types.NewInt(out...)
}

func subset(t *testing.T, x types.Value, positions ...types.Value) types.Value {
	t.Helper()
	got, err := Extract(nil, x, positions, SubsetOptions())
	if err != nil {
		t.Fatalf("%s[...]: unexpected error: %v", x, err)
	}
	return got
}

func subscript(t *testing.T, x types.Value, positions ...types.Value) types.Value {
	t.Helper()
	got, err := Extract(nil, x, positions, SubscriptOptions())
	if err != nil {
		t.Fatalf("%s[[...]]: unexpected error: %v", x, err)
	}
	return got
}

func assign(t *testing.T, x types.Value, value types.Value, positions ...types.Value) types.Value {
	t.Helper()
	got, err := Replace(nil, x, positions, value, ReplaceOptions{})
	if err != nil {
		t.Fatalf("%s[...] <- %s: unexpected error: %v", x, value, err)
	}
	return got
}

func assign2(t *testing.T, x types.Value, value types.Value, positions ...types.Value) types.Value {
	t.Helper()
	got, err := Replace(nil, x, positions, value, ReplaceOptions{Subscript: true})
	if err != nil {
		t.Fatalf("%s[[...]] <- %s: unexpected error: %v", x, value, err)
	}
	return got
}

func expectValue(t *testing.T, want, got types.Value) {
	t.Helper()
	if got == nil || !want.Equal(got) {
		t.Errorf("expected %s, got %v", want, got)
	}
}

func expectCode(t *testing.T, err error, code types.ErrorCode) {
	t.Helper()
	var e *types.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected %s, got %v", code, err)
	}
	if e.Code != code {
		t.Errorf("expected %s, got %s (%v)", code, e.Code, err)
	}
}

func TestErrorAttribution(t *testing.T) {
	ctx := types.NewAccessContext("x[[5]]")
	_, err := Extract(ctx, dbls(1, 2), pos(ints(5)), SubscriptOptions())
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Error(); got != "Error in x[[5]] : subscript out of bounds" {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(err, types.NewError(types.E_SUBSCRIPT_BOUNDS)) {
		t.Error("error should match E_SUBSCRIPT_BOUNDS with errors.Is")
	}
}

func TestNotSubsettable(t *testing.T) {
	_, err := Extract(nil, types.Missing, pos(ints(1)), SubsetOptions())
	expectCode(t, err, types.E_NOT_SUBSETTABLE)
	_, err = Replace(nil, types.Missing, pos(ints(1)), dbls(1), ReplaceOptions{})
	expectCode(t, err, types.E_NOT_SUBSETTABLE)
}
