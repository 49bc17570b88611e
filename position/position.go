// Package position turns raw index arguments into resolved, 1-based index
// sequences for one dimension of a target vector.
package position

import (
	"math"
	"slices"

	"rvec/types"
)

// Kind is the canonical form of a position
type Kind int

const (
	KindMissing Kind = iota // whole dimension
	KindIndices             // 1-based integers, zeros dropped, negatives exclude
	KindMask                // logical, recycled
	KindNames               // strings matched against names or dimnames
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindIndices:
		return "indices"
	case KindMask:
		return "mask"
	case KindNames:
		return "names"
	default:
		return "unknown"
	}
}

// Mode is one of subset/subscript combined with read/write
type Mode struct {
	Subscript bool // [[ ]] rather than [ ]
	Replace   bool // write rather than read
}

// String names the mode the way traces and filters refer to it
func (m Mode) String() string {
	op := "subset"
	if m.Subscript {
		op = "subscript"
	}
	if m.Replace {
		return op + "<-"
	}
	return op
}

// Position is one dimension's index specifier for a single access call
type Position struct {
	Kind    Kind
	Indices []int           // KindIndices; types.IntNA marks NA
	Mask    []types.Logical // KindMask
	Strings []string        // KindNames

	// Attributes carried by the raw position value
	Names []string
	Dim   []int
}

// Len returns the number of entries in the position as written
func (p Position) Len() int {
	switch p.Kind {
	case KindIndices:
		return len(p.Indices)
	case KindMask:
		return len(p.Mask)
	case KindNames:
		return len(p.Strings)
	default:
		return 0
	}
}

// Normalize converts a raw index argument to its canonical form
func Normalize(raw types.Value, mode Mode) (Position, error) {
	switch v := raw.(type) {
	case nil, types.NullValue:
		return Position{Kind: KindIndices, Indices: []int{}}, nil
	case types.MissingValue:
		if mode.Subscript {
			if mode.Replace {
				return Position{}, types.NewError(types.E_MISSING_SUBSCRIPT)
			}
			return Position{}, types.NewError(types.E_INVALID_SUBSCRIPT_TYPE, types.TYPE_MISSING.String())
		}
		return Position{Kind: KindMissing}, nil
	case *types.Vector:
		p := Position{Names: v.Names(), Dim: v.Dim()}
		switch v.Type() {
		case types.TYPE_INT:
			p.Kind = KindIndices
			p.Indices = slices.Clone(v.Ints())
		case types.TYPE_DOUBLE:
			p.Kind = KindIndices
			p.Indices = make([]int, v.Len())
			for i, f := range v.Doubles() {
				p.Indices[i] = DoubleToIndex(f)
			}
		case types.TYPE_LOGICAL:
			p.Kind = KindMask
			p.Mask = slices.Clone(v.Logicals())
		case types.TYPE_STR:
			p.Kind = KindNames
			p.Strings = slices.Clone(v.Strings())
		default:
			return Position{}, types.NewError(types.E_INVALID_SUBSCRIPT_TYPE, v.Type().String())
		}
		return p, nil
	default:
		return Position{}, types.NewError(types.E_INVALID_SUBSCRIPT_TYPE, raw.Type().String())
	}
}

// DoubleToIndex truncates a double position toward zero. NaN becomes NA,
// values strictly between -1 and 0 become -1, and magnitudes past the
// integer range saturate.
func DoubleToIndex(f float64) int {
	switch {
	case math.IsNaN(f):
		return types.IntNA
	case f > types.IntMax:
		return types.IntMax
	case f < -types.IntMax:
		return -types.IntMax
	case f < 0 && f > -1:
		return -1
	}
	return int(math.Trunc(f))
}
