package access

import (
	"rvec/types"
)

func extract(x types.Value, positions []types.Value, opts ExtractOptions) (types.Value, error) {
	switch v := x.(type) {
	case nil, types.NullValue:
		return types.Null, nil
	case *types.Vector:
		return extractVector(v, positions, opts)
	default:
		return nil, types.NewError(types.E_NOT_SUBSETTABLE, x.Type().String())
	}
}

func extractVector(v *types.Vector, positions []types.Value, opts ExtractOptions) (types.Value, error) {
	if len(positions) == 0 {
		positions = []types.Value{types.Missing}
	}
	if !opts.Subscript && len(positions) == 1 && types.IsMissing(positions[0]) {
		// x[] is a fresh copy of x
		return v.Copy(), nil
	}
	if opts.Subscript && v.Type() == types.TYPE_LIST && len(positions) == 1 && positions[0].Len() > 1 {
		return extractRecursive(v, positions[0], opts)
	}

	p, err := coordinate(v, positions, opts.mode(), opts.Exact)
	if err != nil {
		return nil, err
	}

	if opts.Subscript {
		flat := -1
		p.each(func(_, f int) { flat = f })
		if v.Type() == types.TYPE_LIST {
			if flat < 0 {
				return types.Null, nil
			}
			elem := v.Elements()[flat]
			if vec := types.AsVector(elem); vec != nil {
				// the caller now holds the element as well as the list
				vec.IncRef()
			}
			return elem, nil
		}
		result := types.NewVector(v.Type(), 1)
		if flat < 0 {
			result.SetNA(0)
		} else {
			result.CopyElement(0, v, flat)
		}
		return result, nil
	}

	result := types.NewVector(v.Type(), p.total)
	p.each(func(out, flat int) {
		if flat < 0 {
			result.SetNA(out)
			return
		}
		result.CopyElement(out, v, flat)
	})
	p.attach(result, v, opts.Drop)
	return result, nil
}
