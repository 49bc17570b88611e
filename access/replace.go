package access

import (
	"slices"

	"rvec/position"
	"rvec/trace"
	"rvec/types"
)

// writeCall carries the state of one Replace call
type writeCall struct {
	ctx  *types.AccessContext
	op   string
	opts ReplaceOptions
}

func (w *writeCall) replace(x types.Value, positions []types.Value, value types.Value) (types.Value, error) {
	if value == nil {
		value = types.Null
	}
	if types.IsMissing(value) {
		return nil, types.NewError(types.E_REPLACEMENT_0)
	}

	var vec *types.Vector
	switch v := x.(type) {
	case nil, types.NullValue:
		if types.IsNull(value) {
			return types.Null, nil
		}
		t := value.Type()
		if w.opts.Subscript && value.Len() != 1 {
			// NULL[[i]] <- c(...) builds a list
			t = types.TYPE_LIST
		}
		vec = types.NewVector(t, 0)
	case *types.Vector:
		vec = v
	default:
		return nil, types.NewError(types.E_NOT_SUBSETTABLE, x.Type().String())
	}

	if w.opts.Subscript && vec.Type() == types.TYPE_LIST && len(positions) == 1 && positions[0].Len() > 1 {
		return w.replaceRecursive(vec, positions[0], value)
	}
	return w.replaceVector(vec, positions, value)
}

func (w *writeCall) replaceVector(vec *types.Vector, positions []types.Value, value types.Value) (types.Value, error) {
	subscript := w.opts.Subscript
	valueVec := types.AsVector(value)
	deleting := valueVec == nil && vec.Type() == types.TYPE_LIST

	castType := vec.Type()
	if valueVec != nil {
		t, ok := types.Promote(vec.Type(), valueVec.Type())
		if !ok {
			code := types.E_SUBASSIGN_TYPE_FIX
			if subscript {
				code = types.E_SUBSCRIPT_TYPES
			}
			return nil, types.NewError(code, valueVec.Type().String(), vec.Type().String())
		}
		castType = t
	}

	if len(positions) == 0 {
		positions = []types.Value{types.Missing}
	}
	p, err := coordinate(vec, positions, w.opts.mode(), true)
	if err != nil {
		return nil, err
	}

	if p.total == 0 {
		if castType != vec.Type() {
			return types.CastVector(vec, castType), nil
		}
		return vec, nil
	}

	valueLen := 0
	if valueVec != nil {
		valueLen = valueVec.Len()
	}
	switch {
	case deleting:
		if !p.linear {
			if subscript {
				return nil, types.NewError(types.E_REPLACEMENT_0)
			}
			return nil, types.NewError(types.E_NOT_MULTIPLE_REPLACEMENT)
		}
	case subscript:
		if castType != types.TYPE_LIST {
			if valueLen == 0 {
				return nil, types.NewError(types.E_REPLACEMENT_0)
			}
			if valueLen > 1 {
				return nil, types.NewError(types.E_MORE_SUPPLIED_REPLACE)
			}
		}
	default:
		if valueLen == 0 {
			return nil, types.NewError(types.E_REPLACEMENT_0)
		}
		if p.containsNA() && valueLen > 1 {
			return nil, types.NewError(types.E_NA_SUBSCRIPTED)
		}
		if p.total%valueLen != 0 && !p.linear {
			return nil, types.NewError(types.E_NOT_MULTIPLE_REPLACEMENT)
		}
	}

	// Past this point nothing fails: take exclusive ownership, grow, write.
	target := vec
	switch {
	case castType != vec.Type():
		target = types.CastVector(vec, castType)
	case vec.IsShared():
		trace.Copy(w.op, "shared target")
		target = vec.Copy()
	case valueVec == vec:
		trace.Copy(w.op, "value aliases target")
		target = vec.Copy()
	}

	origLen := target.Len()
	if p.linear {
		if n := p.profiles[0].MaxOutOfBounds; n > origLen {
			if deleting && subscript {
				// deleting an element that does not exist
				return vec, nil
			}
			target = w.swap(vec, target, target.Resized(n))
			p.extents[0] = n
		}
	}

	if !deleting && !subscript && p.total%valueLen != 0 {
		warning := types.NewError(types.E_NOT_MULTIPLE_REPLACEMENT)
		w.ctx.Warn(warning)
		trace.Warning(w.op, warning)
	}

	var src *types.Vector
	if !deleting && !(subscript && castType == types.TYPE_LIST) {
		src = types.CastVector(valueVec, castType)
	}

	var deleted []bool
	if deleting {
		deleted = make([]bool, target.Len())
	}
	p.each(func(out, flat int) {
		switch {
		case flat < 0:
			// NA positions are skipped
		case deleting:
			deleted[flat] = true
		case src == nil:
			target.SetElement(flat, value)
		default:
			target.CopyElement(flat, src, out%valueLen)
		}
	})

	if deleting {
		keep := make([]bool, len(deleted))
		for i, d := range deleted {
			keep[i] = !d
		}
		return w.swap(vec, target, target.Compact(keep)), nil
	}

	if p.linear && p.positions[0].Kind == position.KindNames {
		setNewNames(target, p.resolved[0], origLen)
	}
	return target, nil
}

// swap replaces the working vector. The superseded vector gives up its holds
// on its list elements: a private copy is dropped, and an unshared original
// is consumed by the write.
func (w *writeCall) swap(orig, old, next *types.Vector) *types.Vector {
	if old != orig || !orig.IsShared() {
		old.Release()
	}
	return next
}

// setNewNames names the slots a string position created
func setNewNames(target *types.Vector, r position.Resolved, origLen int) {
	names := slices.Clone(target.Names())
	if names == nil {
		names = make([]string, target.Len())
	}
	for i, q := range r.Strings {
		idx := r.Index[i]
		if idx != types.IntNA && idx > origLen {
			names[idx-1] = q
		}
	}
	target.SetNames(names)
}
