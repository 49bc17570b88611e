package position

import (
	"rvec/lookup"
	"rvec/types"
)

// Target describes the dimension a position is resolved against
type Target struct {
	Length   int      // extent of this dimension
	DimIndex int      // 0-based dimension number
	NumDims  int      // dimensions addressed by the access, 1 for plain vectors
	ListLike bool     // the container is a list
	Names    []string // names (1-D) or this dimension's dimnames, nil when absent
	Exact    bool     // only exact name matches (subscript read honours false)
	Mode     Mode
}

// Resolved is the index sequence selected in one dimension
type Resolved struct {
	All     bool     // identity over 1..Length
	Length  int      // dimension extent the sequence was resolved against
	Index   []int    // 1-based, types.IntNA for NA; unused when All
	Strings []string // query behind each index for string positions
}

// Len returns the number of selected positions
func (r Resolved) Len() int {
	if r.All {
		return r.Length
	}
	return len(r.Index)
}

// At returns the i-th selected 1-based index
func (r Resolved) At(i int) int {
	if r.All {
		return i + 1
	}
	return r.Index[i]
}

// Profile summarises a resolved position
type Profile struct {
	Selected       int  // length of the resolved sequence
	MaxOutOfBounds int  // largest index past Length, 0 when none
	ContainsNA     bool // NA selected, or an out-of-range read
}

// Resolve computes the indices a canonical position selects
func Resolve(p Position, t Target) (Resolved, Profile, error) {
	var (
		r       Resolved
		err     error
		stretch int
	)
	switch p.Kind {
	case KindMissing:
		r = Resolved{All: true}
	case KindIndices:
		r, err = resolveIndices(p.Indices, t)
	case KindMask:
		r, err = resolveMask(p.Mask, t)
		if len(p.Mask) > t.Length {
			stretch = len(p.Mask)
		}
	case KindNames:
		r, err = resolveNames(p.Strings, t)
	}
	if err != nil {
		return Resolved{}, Profile{}, err
	}
	r.Length = t.Length

	prof := profile(r, t)
	if stretch > prof.MaxOutOfBounds {
		prof.MaxOutOfBounds = stretch
	}
	if t.Mode.Subscript {
		if err := checkSubscript(r, prof, t); err != nil {
			return Resolved{}, Profile{}, err
		}
	}
	return r, prof, nil
}

func profile(r Resolved, t Target) Profile {
	prof := Profile{Selected: r.Len()}
	if r.All {
		return prof
	}
	for _, i := range r.Index {
		switch {
		case i == types.IntNA:
			prof.ContainsNA = true
		case i > t.Length:
			if i > prof.MaxOutOfBounds {
				prof.MaxOutOfBounds = i
			}
			if !t.Mode.Replace {
				prof.ContainsNA = true
			}
		}
	}
	return prof
}

func resolveIndices(idx []int, t Target) (Resolved, error) {
	var hasPos, hasNeg, hasNA bool
	for _, i := range idx {
		switch {
		case i == types.IntNA:
			hasNA = true
		case i < 0:
			hasNeg = true
		case i > 0:
			hasPos = true
		}
	}

	if hasNeg {
		if hasPos || hasNA {
			return Resolved{}, types.NewError(types.E_ONLY_0_MIXED)
		}
		excluded := make([]bool, t.Length)
		for _, i := range idx {
			if i < 0 && -i <= t.Length {
				excluded[-i-1] = true
			}
		}
		out := make([]int, 0, t.Length)
		for k, ex := range excluded {
			if !ex {
				out = append(out, k+1)
			}
		}
		return Resolved{Index: out}, nil
	}

	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i == 0 {
			continue
		}
		if i > t.Length && t.NumDims > 1 {
			return Resolved{}, types.NewError(types.E_SUBSCRIPT_BOUNDS)
		}
		out = append(out, i)
	}
	return Resolved{Index: out}, nil
}

func resolveMask(mask []types.Logical, t Target) (Resolved, error) {
	n := len(mask)
	if n == 0 {
		return Resolved{Index: []int{}}, nil
	}
	if n > t.Length && t.NumDims > 1 {
		return Resolved{}, types.NewError(types.E_LOGICAL_SUBSCRIPT_LONG)
	}
	total := max(t.Length, n)
	out := make([]int, 0, total)
	for k := 0; k < total; k++ {
		switch mask[k%n] {
		case types.True:
			out = append(out, k+1)
		case types.LogicalNA:
			out = append(out, types.IntNA)
		}
	}
	return Resolved{Index: out}, nil
}

func resolveNames(query []string, t Target) (Resolved, error) {
	if t.NumDims > 1 && t.Names == nil {
		if t.Mode.Replace {
			return Resolved{}, types.NewError(types.E_NO_ARRAY_DIMNAMES)
		}
		return Resolved{}, types.NewError(types.E_SUBSCRIPT_BOUNDS)
	}
	read := !t.Mode.Replace
	opts := lookup.Options{
		NotFoundStart:    t.Length,
		Exact:            t.Exact || !(read && t.Mode.Subscript),
		UseNAForNotFound: read && t.Mode.Subscript && t.ListLike,
	}
	idx := lookup.Find(t.Names, query, opts)
	if t.NumDims > 1 {
		for _, i := range idx {
			if i > t.Length {
				return Resolved{}, types.NewError(types.E_SUBSCRIPT_BOUNDS)
			}
		}
	}
	return Resolved{Index: idx, Strings: query}, nil
}

// checkSubscript enforces the single-element rule of [[ ]]
func checkSubscript(r Resolved, prof Profile, t Target) error {
	switch {
	case prof.Selected < 1:
		return types.NewError(types.E_SELECT_LESS_1)
	case prof.Selected > 1:
		return types.NewError(types.E_SELECT_MORE_1)
	}
	i := r.At(0)
	switch {
	case i == types.IntNA:
		if t.Mode.Replace || !t.ListLike {
			return types.NewError(types.E_SUBSCRIPT_BOUNDS)
		}
	case i > t.Length:
		if !t.Mode.Replace && !t.ListLike {
			return types.NewError(types.E_SUBSCRIPT_BOUNDS)
		}
	}
	return nil
}
