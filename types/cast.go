package types

import (
	"fmt"
	"slices"
	"strconv"
)

// CastVector converts v to type t, keeping names, dim and dimnames. A cast
// to list keeps only the names.
// Only widening casts along the promotion order are supported; casting to
// the vector's own type returns v unchanged.
func CastVector(v *Vector, t ElementType) *Vector {
	if v.typ == t {
		return v
	}
	n := v.Len()
	out := NewVector(t, n)
	switch t {
	case TYPE_INT:
		if v.typ != TYPE_LOGICAL {
			panic(castPanic(v.typ, t))
		}
		dst := out.Ints()
		for i, l := range v.Logicals() {
			dst[i] = logicalToInt(l)
		}
	case TYPE_DOUBLE:
		dst := out.Doubles()
		switch v.typ {
		case TYPE_LOGICAL:
			for i, l := range v.Logicals() {
				dst[i] = intToDouble(logicalToInt(l))
			}
		case TYPE_INT:
			for i, x := range v.Ints() {
				dst[i] = intToDouble(x)
			}
		default:
			panic(castPanic(v.typ, t))
		}
	case TYPE_STR:
		dst := out.Strings()
		for i := 0; i < n; i++ {
			dst[i] = v.elementString(i)
		}
	case TYPE_LIST:
		for i := 0; i < n; i++ {
			out.SetElement(i, v.ElementAt(i))
		}
	default:
		panic(castPanic(v.typ, t))
	}
	out.names = slices.Clone(v.names)
	if t != TYPE_LIST {
		out.dim = slices.Clone(v.dim)
		out.dimNames = cloneDimNames(v.dimNames)
		out.dimNamesLabels = slices.Clone(v.dimNamesLabels)
	}
	return out
}

// CastValue converts a value to type t; NULL becomes an empty vector of t
func CastValue(x Value, t ElementType) *Vector {
	switch val := x.(type) {
	case *Vector:
		return CastVector(val, t)
	default:
		return NewVector(t, 0)
	}
}

func castPanic(from, to ElementType) string {
	return fmt.Sprintf("types: cannot cast %s to %s", from, to)
}

func logicalToInt(l Logical) int {
	if l == LogicalNA {
		return IntNA
	}
	return int(l)
}

func intToDouble(i int) float64 {
	if i == IntNA {
		return DoubleNA
	}
	return float64(i)
}

// elementString converts element i of an atomic vector to its character form
func (v *Vector) elementString(i int) string {
	if v.IsNA(i) && !(v.typ == TYPE_DOUBLE && !IsDoubleNA(v.Doubles()[i])) {
		return StringNA
	}
	switch v.typ {
	case TYPE_LOGICAL:
		return v.Logicals()[i].String()
	case TYPE_INT:
		return strconv.Itoa(v.Ints()[i])
	case TYPE_DOUBLE:
		return FormatDouble(v.Doubles()[i])
	case TYPE_STR:
		return v.Strings()[i]
	case TYPE_RAW:
		b := v.Raws()[i]
		return strconv.FormatUint(uint64(b>>4), 16) + strconv.FormatUint(uint64(b&0xf), 16)
	default:
		panic(castPanic(v.typ, TYPE_STR))
	}
}
