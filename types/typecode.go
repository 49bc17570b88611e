package types

// ElementType identifies the element family of a value
type ElementType int

const (
	TYPE_NULL    ElementType = 0
	TYPE_RAW     ElementType = 1
	TYPE_LOGICAL ElementType = 2
	TYPE_INT     ElementType = 3
	TYPE_DOUBLE  ElementType = 4
	TYPE_STR     ElementType = 5
	TYPE_LIST    ElementType = 6
	TYPE_MISSING ElementType = 7
)

// String returns the host-language name of the type
func (t ElementType) String() string {
	switch t {
	case TYPE_NULL:
		return "NULL"
	case TYPE_RAW:
		return "raw"
	case TYPE_LOGICAL:
		return "logical"
	case TYPE_INT:
		return "integer"
	case TYPE_DOUBLE:
		return "double"
	case TYPE_STR:
		return "character"
	case TYPE_LIST:
		return "list"
	case TYPE_MISSING:
		return "symbol"
	default:
		return "unknown"
	}
}

// TypeFromString converts a name like "integer" to an ElementType.
// The short forms used by the conformance suites are accepted too.
func TypeFromString(s string) (ElementType, bool) {
	switch s {
	case "NULL", "null":
		return TYPE_NULL, true
	case "raw":
		return TYPE_RAW, true
	case "logical", "lgl":
		return TYPE_LOGICAL, true
	case "integer", "int":
		return TYPE_INT, true
	case "double", "dbl":
		return TYPE_DOUBLE, true
	case "character", "chr", "string":
		return TYPE_STR, true
	case "list":
		return TYPE_LIST, true
	case "symbol", "missing":
		return TYPE_MISSING, true
	default:
		return TYPE_NULL, false
	}
}

// IsAtomic reports whether vectors of this type hold plain elements
func (t ElementType) IsAtomic() bool {
	switch t {
	case TYPE_RAW, TYPE_LOGICAL, TYPE_INT, TYPE_DOUBLE, TYPE_STR:
		return true
	}
	return false
}

// Promote returns the type resulting from mixing a container of type a with
// a value of type b. Raw only combines with raw; list absorbs everything.
func Promote(a, b ElementType) (ElementType, bool) {
	if a == b {
		return a, true
	}
	if a == TYPE_LIST || b == TYPE_LIST {
		return TYPE_LIST, true
	}
	if a == TYPE_NULL {
		return b, true
	}
	if b == TYPE_NULL {
		return a, true
	}
	if a == TYPE_MISSING || b == TYPE_MISSING {
		return TYPE_NULL, false
	}
	if a == TYPE_RAW || b == TYPE_RAW {
		return TYPE_NULL, false
	}
	if a > b {
		return a, true
	}
	return b, true
}
