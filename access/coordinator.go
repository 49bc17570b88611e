package access

import (
	"rvec/position"
	"rvec/types"
)

// plan is the iteration plan of one access: the cartesian product of the
// positions resolved in every addressed dimension
type plan struct {
	linear    bool  // one position over the whole vector
	extents   []int // extent of each addressed dimension
	positions []position.Position
	resolved  []position.Resolved
	profiles  []position.Profile
	total     int
}

// coordinate normalizes and resolves the positions of an access against vec
func coordinate(vec *types.Vector, positions []types.Value, mode position.Mode, exact bool) (*plan, error) {
	dims := vec.Dim()
	numDims := max(len(dims), 1)
	if len(positions) != 1 && len(positions) != numDims {
		return nil, dimensionError(mode)
	}

	p := &plan{linear: len(positions) == 1}
	listLike := vec.Type() == types.TYPE_LIST
	for d, raw := range positions {
		pos, err := position.Normalize(raw, mode)
		if err != nil {
			return nil, err
		}
		target := position.Target{
			DimIndex: d,
			NumDims:  len(positions),
			ListLike: listLike,
			Exact:    exact,
			Mode:     mode,
		}
		if p.linear {
			target.Length = vec.Len()
			target.Names = sourceNames(vec)
			if !mode.Subscript && position.IsCoordinateMatrix(pos, len(dims)) {
				if pos, err = position.MatrixToIndices(pos, dims, vec.DimNames()); err != nil {
					return nil, err
				}
			}
		} else {
			target.Length = dims[d]
			if dn := vec.DimNames(); dn != nil {
				target.Names = dn[d]
			}
		}

		r, prof, err := position.Resolve(pos, target)
		if err != nil {
			return nil, err
		}
		p.extents = append(p.extents, target.Length)
		p.positions = append(p.positions, pos)
		p.resolved = append(p.resolved, r)
		p.profiles = append(p.profiles, prof)
	}

	p.total = 1
	for _, prof := range p.profiles {
		p.total *= prof.Selected
	}
	return p, nil
}

// sourceNames returns the names a single position is matched against
func sourceNames(vec *types.Vector) []string {
	if dn := vec.DimNames(); len(dn) == 1 && dn[0] != nil {
		return dn[0]
	}
	return vec.Names()
}

func dimensionError(mode position.Mode) *types.Error {
	switch {
	case mode.Subscript:
		return types.NewError(types.E_IMPROPER_SUBSCRIPT)
	case mode.Replace:
		return types.NewError(types.E_INCORRECT_SUBSCRIPTS_MATRIX)
	default:
		return types.NewError(types.E_INCORRECT_DIMENSIONS)
	}
}

// containsNA reports whether any dimension selected an NA
func (p *plan) containsNA() bool {
	for _, prof := range p.profiles {
		if prof.ContainsNA {
			return true
		}
	}
	return false
}

// each calls fn for every output position in column-major order with the
// 0-based flat index it maps to, or -1 when any coordinate is NA or out of range
func (p *plan) each(fn func(out, flat int)) {
	if p.total == 0 {
		return
	}
	n := len(p.resolved)
	strides := make([]int, n)
	stride := 1
	for d := range strides {
		strides[d] = stride
		stride *= p.extents[d]
	}

	counters := make([]int, n)
	for out := 0; out < p.total; out++ {
		flat := 0
		for d := 0; d < n; d++ {
			idx := p.resolved[d].At(counters[d])
			if idx == types.IntNA || idx < 1 || idx > p.extents[d] {
				flat = -1
				break
			}
			flat += (idx - 1) * strides[d]
		}
		fn(out, flat)

		for d := 0; d < n; d++ {
			counters[d]++
			if counters[d] < p.profiles[d].Selected {
				break
			}
			counters[d] = 0
		}
	}
}

// shape returns the result dim and the source dimensions it keeps. Dimensions
// selecting one position are dropped when drop is set; fewer than two kept
// dimensions leave no dim.
func (p *plan) shape(drop bool) (dim []int, kept []int) {
	for d, prof := range p.profiles {
		if drop && prof.Selected == 1 {
			continue
		}
		kept = append(kept, d)
		dim = append(dim, prof.Selected)
	}
	if len(kept) < 2 {
		return nil, kept
	}
	return dim, kept
}

// attach sets names, dim and dimnames of a subset result
func (p *plan) attach(result, src *types.Vector, drop bool) {
	if p.linear {
		if names := sourceNames(src); names != nil {
			result.SetNames(project(names, p.resolved[0]))
		} else if p.positions[0].Kind == position.KindNames {
			result.SetNames(project(nil, p.resolved[0]))
		}
		return
	}

	dn := src.DimNames()
	dim, kept := p.shape(drop)
	if dim != nil {
		result.SetDim(dim)
		if dn == nil {
			return
		}
		rdn := make([][]string, len(kept))
		for i, d := range kept {
			if dn[d] != nil {
				rdn[i] = project(dn[d], p.resolved[d])
			}
		}
		result.SetDimNames(rdn)
		if labels := src.DimNamesLabels(); labels != nil {
			rl := make([]string, len(kept))
			for i, d := range kept {
				rl[i] = labels[d]
			}
			result.SetDimNamesLabels(rl)
		}
		return
	}

	if dn == nil {
		return
	}
	// A single dimension whose selection spans the whole result names it
	only := -1
	for d, prof := range p.profiles {
		if prof.Selected != p.total {
			continue
		}
		if only >= 0 {
			return
		}
		only = d
	}
	if only >= 0 && dn[only] != nil {
		result.SetNames(project(dn[only], p.resolved[only]))
	}
}

// project maps names through resolved indices; NA and out-of-range slots get NA
func project(names []string, r position.Resolved) []string {
	out := make([]string, r.Len())
	for i := range out {
		idx := r.At(i)
		if idx == types.IntNA || idx < 1 || idx > len(names) {
			out[i] = types.StringNA
			continue
		}
		out[i] = names[idx-1]
	}
	return out
}
