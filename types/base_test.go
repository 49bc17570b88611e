package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		code  ErrorCode
		value int
		name  string
	}{
		{E_NONE, 0, "E_NONE"},
		{E_INVALID_SUBSCRIPT_TYPE, 1, "E_INVALID_SUBSCRIPT_TYPE"},
		{E_SELECT_LESS_1, 2, "E_SELECT_LESS_1"},
		{E_SELECT_MORE_1, 3, "E_SELECT_MORE_1"},
		{E_SUBSCRIPT_BOUNDS, 4, "E_SUBSCRIPT_BOUNDS"},
		{E_ONLY_0_MIXED, 5, "E_ONLY_0_MIXED"},
		{E_INCORRECT_DIMENSIONS, 6, "E_INCORRECT_DIMENSIONS"},
		{E_INCORRECT_SUBSCRIPTS_MATRIX, 7, "E_INCORRECT_SUBSCRIPTS_MATRIX"},
		{E_IMPROPER_SUBSCRIPT, 8, "E_IMPROPER_SUBSCRIPT"},
		{E_NO_ARRAY_DIMNAMES, 9, "E_NO_ARRAY_DIMNAMES"},
		{E_REPLACEMENT_0, 10, "E_REPLACEMENT_0"},
		{E_MORE_SUPPLIED_REPLACE, 11, "E_MORE_SUPPLIED_REPLACE"},
		{E_NA_SUBSCRIPTED, 12, "E_NA_SUBSCRIPTED"},
		{E_SUBASSIGN_TYPE_FIX, 13, "E_SUBASSIGN_TYPE_FIX"},
		{E_SUBSCRIPT_TYPES, 14, "E_SUBSCRIPT_TYPES"},
		{E_MISSING_SUBSCRIPT, 15, "E_MISSING_SUBSCRIPT"},
		{E_RECURSIVE_INDEXING_FAILED, 16, "E_RECURSIVE_INDEXING_FAILED"},
		{E_NO_SUCH_INDEX, 17, "E_NO_SUCH_INDEX"},
		{E_NOT_MULTIPLE_REPLACEMENT, 18, "E_NOT_MULTIPLE_REPLACEMENT"},
		{E_LOGICAL_SUBSCRIPT_LONG, 19, "E_LOGICAL_SUBSCRIPT_LONG"},
		{E_NEGATIVE_MATRIX_SUBSCRIPT, 20, "E_NEGATIVE_MATRIX_SUBSCRIPT"},
		{E_NOT_SUBSETTABLE, 21, "E_NOT_SUBSETTABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.code) != tt.value {
				t.Errorf("%s: expected value %d, got %d", tt.name, tt.value, int(tt.code))
			}
			if tt.code.String() != tt.name {
				t.Errorf("%s: String() returned %q, expected %q", tt.name, tt.code.String(), tt.name)
			}
			back, ok := ErrorFromString(tt.name)
			if !ok || back != tt.code {
				t.Errorf("%s: ErrorFromString returned %s", tt.name, back)
			}
			if tt.code.Message() == "unknown error" {
				t.Errorf("%s: missing message", tt.name)
			}
		})
	}

	if _, ok := ErrorFromString("E_PERM"); ok {
		t.Error("ErrorFromString(\"E_PERM\") should fail")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewError(E_SUBSCRIPT_BOUNDS), "subscript out of bounds"},
		{NewError(E_INVALID_SUBSCRIPT_TYPE, "list"), "invalid subscript type 'list'"},
		{NewError(E_SUBASSIGN_TYPE_FIX, "double", "raw"), "incompatible types (from double to raw) in subassignment type fix"},
		{NewError(E_RECURSIVE_INDEXING_FAILED, 3), "recursive indexing failed at level 3"},
		{NewError(E_ONLY_0_MIXED), "only 0's may be mixed with negative subscripts"},
		{NewError(E_REPLACEMENT_0).WithCall("x[1] <- NULL"), "Error in x[1] <- NULL : replacement has length zero"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s should print %q, got %q", tt.err.Code, tt.want, got)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("reading: %w", NewError(E_SUBSCRIPT_BOUNDS).WithCall("x[[3]]"))
	if !errors.Is(err, NewError(E_SUBSCRIPT_BOUNDS)) {
		t.Error("wrapped error should match its code")
	}
	if errors.Is(err, NewError(E_SELECT_MORE_1)) {
		t.Error("wrapped error should not match another code")
	}
	var e *Error
	if !errors.As(err, &e) || e.Call != "x[[3]]" {
		t.Errorf("errors.As should recover the call site, got %v", e)
	}
}

func TestWithCall(t *testing.T) {
	base := NewError(E_SUBSCRIPT_BOUNDS)
	first := base.WithCall("a[1]")
	if base.Call != "" {
		t.Error("WithCall should not modify the receiver")
	}
	if again := first.WithCall("b[2]"); again.Call != "a[1]" {
		t.Errorf("an attributed error should keep its call site, got %q", again.Call)
	}
	if same := base.WithCall(""); same != base {
		t.Error("an empty call site should return the error unchanged")
	}
}

func TestIsWarning(t *testing.T) {
	if !NewError(E_NOT_MULTIPLE_REPLACEMENT).IsWarning() {
		t.Error("E_NOT_MULTIPLE_REPLACEMENT should be a warning")
	}
	if NewError(E_SUBSCRIPT_BOUNDS).IsWarning() {
		t.Error("E_SUBSCRIPT_BOUNDS should not be a warning")
	}
}

func TestNullAndMissing(t *testing.T) {
	if !IsNull(Null) || !IsNull(nil) {
		t.Error("IsNull should accept NULL and nil")
	}
	if IsNull(Missing) || IsNull(NewInt()) {
		t.Error("IsNull should reject the missing marker and empty vectors")
	}
	if !IsMissing(Missing) || IsMissing(Null) {
		t.Error("IsMissing should only accept the missing marker")
	}
	if Null.Len() != 0 || Null.Type() != TYPE_NULL || Null.String() != "NULL" {
		t.Errorf("unexpected NULL: %s %s %d", Null, Null.Type(), Null.Len())
	}
	if !Null.Equal(Null) || Null.Equal(NewList()) {
		t.Error("NULL should only equal NULL")
	}
}
