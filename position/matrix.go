package position

import "rvec/types"

// IsCoordinateMatrix reports whether a single subset position addresses an
// array of numDims dimensions with one coordinate tuple per row
func IsCoordinateMatrix(p Position, numDims int) bool {
	if numDims < 2 || len(p.Dim) != 2 || p.Dim[1] != numDims {
		return false
	}
	return p.Kind == KindIndices || p.Kind == KindNames
}

// MatrixToIndices flattens an n×k coordinate matrix into n 1-based indices
// into an array with the given extents, first dimension fastest. A row whose
// first NA or zero coordinate comes before any invalid one yields NA or 0.
func MatrixToIndices(p Position, dims []int, dimNames [][]string) (Position, error) {
	coords := p.Indices
	if p.Kind == KindNames {
		var err error
		if coords, err = namesToCoordinates(p, dimNames); err != nil {
			return Position{}, err
		}
	}

	rows, cols := p.Dim[0], p.Dim[1]
	out := make([]int, rows)
	for r := 0; r < rows; r++ {
		flat, stride := 1, 1
	row:
		for d := 0; d < cols; d++ {
			c := coords[r+d*rows]
			switch {
			case c == types.IntNA:
				flat = types.IntNA
				break row
			case c < 0:
				return Position{}, types.NewError(types.E_NEGATIVE_MATRIX_SUBSCRIPT)
			case c == 0:
				flat = 0
				break row
			case c > dims[d]:
				return Position{}, types.NewError(types.E_SUBSCRIPT_BOUNDS)
			}
			flat += (c - 1) * stride
			stride *= dims[d]
		}
		out[r] = flat
	}
	return Position{Kind: KindIndices, Indices: out}, nil
}

// namesToCoordinates matches column d of a character matrix against dimnames[d]
func namesToCoordinates(p Position, dimNames [][]string) ([]int, error) {
	rows, cols := p.Dim[0], p.Dim[1]
	coords := make([]int, len(p.Strings))
	for d := 0; d < cols; d++ {
		var names []string
		if dimNames != nil {
			names = dimNames[d]
		}
		for r := 0; r < rows; r++ {
			s := p.Strings[r+d*rows]
			if types.IsStringNA(s) {
				coords[r+d*rows] = types.IntNA
				continue
			}
			k := indexOf(names, s)
			if k == 0 {
				return nil, types.NewError(types.E_SUBSCRIPT_BOUNDS)
			}
			coords[r+d*rows] = k
		}
	}
	return coords, nil
}

func indexOf(names []string, s string) int {
	for i, n := range names {
		if n == s {
			return i + 1
		}
	}
	return 0
}
