package types

// ErrorCode identifies a failure of an element access (E_SUBSCRIPT_BOUNDS etc.)
type ErrorCode int

// Error codes. E_NOT_MULTIPLE_REPLACEMENT is the only warning-level code.
const (
	E_NONE                        ErrorCode = 0
	E_INVALID_SUBSCRIPT_TYPE      ErrorCode = 1
	E_SELECT_LESS_1               ErrorCode = 2
	E_SELECT_MORE_1               ErrorCode = 3
	E_SUBSCRIPT_BOUNDS            ErrorCode = 4
	E_ONLY_0_MIXED                ErrorCode = 5
	E_INCORRECT_DIMENSIONS        ErrorCode = 6
	E_INCORRECT_SUBSCRIPTS_MATRIX ErrorCode = 7
	E_IMPROPER_SUBSCRIPT          ErrorCode = 8
	E_NO_ARRAY_DIMNAMES           ErrorCode = 9
	E_REPLACEMENT_0               ErrorCode = 10
	E_MORE_SUPPLIED_REPLACE       ErrorCode = 11
	E_NA_SUBSCRIPTED              ErrorCode = 12
	E_SUBASSIGN_TYPE_FIX          ErrorCode = 13
	E_SUBSCRIPT_TYPES             ErrorCode = 14
	E_MISSING_SUBSCRIPT           ErrorCode = 15
	E_RECURSIVE_INDEXING_FAILED   ErrorCode = 16
	E_NO_SUCH_INDEX               ErrorCode = 17
	E_NOT_MULTIPLE_REPLACEMENT    ErrorCode = 18
	E_LOGICAL_SUBSCRIPT_LONG      ErrorCode = 19
	E_NEGATIVE_MATRIX_SUBSCRIPT   ErrorCode = 20
	E_NOT_SUBSETTABLE             ErrorCode = 21
)

var errorNames = [...]string{
	E_NONE:                        "E_NONE",
	E_INVALID_SUBSCRIPT_TYPE:      "E_INVALID_SUBSCRIPT_TYPE",
	E_SELECT_LESS_1:               "E_SELECT_LESS_1",
	E_SELECT_MORE_1:               "E_SELECT_MORE_1",
	E_SUBSCRIPT_BOUNDS:            "E_SUBSCRIPT_BOUNDS",
	E_ONLY_0_MIXED:                "E_ONLY_0_MIXED",
	E_INCORRECT_DIMENSIONS:        "E_INCORRECT_DIMENSIONS",
	E_INCORRECT_SUBSCRIPTS_MATRIX: "E_INCORRECT_SUBSCRIPTS_MATRIX",
	E_IMPROPER_SUBSCRIPT:          "E_IMPROPER_SUBSCRIPT",
	E_NO_ARRAY_DIMNAMES:           "E_NO_ARRAY_DIMNAMES",
	E_REPLACEMENT_0:               "E_REPLACEMENT_0",
	E_MORE_SUPPLIED_REPLACE:       "E_MORE_SUPPLIED_REPLACE",
	E_NA_SUBSCRIPTED:              "E_NA_SUBSCRIPTED",
	E_SUBASSIGN_TYPE_FIX:          "E_SUBASSIGN_TYPE_FIX",
	E_SUBSCRIPT_TYPES:             "E_SUBSCRIPT_TYPES",
	E_MISSING_SUBSCRIPT:           "E_MISSING_SUBSCRIPT",
	E_RECURSIVE_INDEXING_FAILED:   "E_RECURSIVE_INDEXING_FAILED",
	E_NO_SUCH_INDEX:               "E_NO_SUCH_INDEX",
	E_NOT_MULTIPLE_REPLACEMENT:    "E_NOT_MULTIPLE_REPLACEMENT",
	E_LOGICAL_SUBSCRIPT_LONG:      "E_LOGICAL_SUBSCRIPT_LONG",
	E_NEGATIVE_MATRIX_SUBSCRIPT:   "E_NEGATIVE_MATRIX_SUBSCRIPT",
	E_NOT_SUBSETTABLE:             "E_NOT_SUBSETTABLE",
}

// String returns the name of an error code
func (e ErrorCode) String() string {
	if e < 0 || int(e) >= len(errorNames) {
		return "E_UNKNOWN"
	}
	return errorNames[e]
}

// Message returns the user-facing message template for an error code.
// Some templates take arguments, see Error.Error.
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "no error"
	case E_INVALID_SUBSCRIPT_TYPE:
		return "invalid subscript type '%s'"
	case E_SELECT_LESS_1:
		return "attempt to select less than one element"
	case E_SELECT_MORE_1:
		return "attempt to select more than one element"
	case E_SUBSCRIPT_BOUNDS:
		return "subscript out of bounds"
	case E_ONLY_0_MIXED:
		return "only 0's may be mixed with negative subscripts"
	case E_INCORRECT_DIMENSIONS:
		return "incorrect number of dimensions"
	case E_INCORRECT_SUBSCRIPTS_MATRIX:
		return "incorrect number of subscripts"
	case E_IMPROPER_SUBSCRIPT:
		return "[[ ]] improper number of subscripts"
	case E_NO_ARRAY_DIMNAMES:
		return "no 'dimnames' attribute for array"
	case E_REPLACEMENT_0:
		return "replacement has length zero"
	case E_MORE_SUPPLIED_REPLACE:
		return "more elements supplied than there are to replace"
	case E_NA_SUBSCRIPTED:
		return "NAs are not allowed in subscripted assignments"
	case E_SUBASSIGN_TYPE_FIX:
		return "incompatible types (from %s to %s) in subassignment type fix"
	case E_SUBSCRIPT_TYPES:
		return "incompatible types (from %s to %s) in [[ assignment"
	case E_MISSING_SUBSCRIPT:
		return "[[ ]] with missing subscript"
	case E_RECURSIVE_INDEXING_FAILED:
		return "recursive indexing failed at level %d"
	case E_NO_SUCH_INDEX:
		return "no such index at level %d"
	case E_NOT_MULTIPLE_REPLACEMENT:
		return "number of items to replace is not a multiple of replacement length"
	case E_LOGICAL_SUBSCRIPT_LONG:
		return "(subscript) logical subscript too long"
	case E_NEGATIVE_MATRIX_SUBSCRIPT:
		return "negative values are not allowed in a matrix subscript"
	case E_NOT_SUBSETTABLE:
		return "object of type '%s' is not subsettable"
	default:
		return "unknown error"
	}
}

// ErrorFromString converts a string like "E_SUBSCRIPT_BOUNDS" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	for code, name := range errorNames {
		if name == s {
			return ErrorCode(code), true
		}
	}
	return E_NONE, false
}

// Value is the interface every accessible value implements
type Value interface {
	Type() ElementType
	Len() int
	String() string   // dput-style representation
	Equal(Value) bool // identical() semantics: NA equals NA, attributes compared
}

// NullValue is the empty value NULL
type NullValue struct{}

// Null is the only NULL value
var Null = NullValue{}

func (NullValue) Type() ElementType { return TYPE_NULL }
func (NullValue) Len() int          { return 0 }
func (NullValue) String() string    { return "NULL" }

// Equal compares two values for equality
func (NullValue) Equal(other Value) bool {
	_, ok := other.(NullValue)
	return ok
}

// MissingValue marks an empty argument such as the row slot in m[, 1]
type MissingValue struct{}

// Missing is the only missing-argument marker
var Missing = MissingValue{}

func (MissingValue) Type() ElementType { return TYPE_MISSING }
func (MissingValue) Len() int          { return 0 }
func (MissingValue) String() string    { return "" }

// Equal compares two values for equality
func (MissingValue) Equal(other Value) bool {
	_, ok := other.(MissingValue)
	return ok
}

// IsNull reports whether v is NULL (or a nil interface)
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(NullValue)
	return ok
}

// IsMissing reports whether v is the missing-argument marker
func IsMissing(v Value) bool {
	_, ok := v.(MissingValue)
	return ok
}
