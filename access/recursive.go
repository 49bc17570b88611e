package access

import (
	"rvec/position"
	"rvec/types"
)

// x[[c(i, j, ...)]] on a list descends one level per path element.

func extractRecursive(v *types.Vector, path types.Value, opts ExtractOptions) (types.Value, error) {
	steps, err := pathSteps(path)
	if err != nil {
		return nil, err
	}
	var cur types.Value = v
	for level, step := range steps[:len(steps)-1] {
		list := types.AsVector(cur)
		if list == nil || list.Type() != types.TYPE_LIST {
			return nil, types.NewError(types.E_RECURSIVE_INDEXING_FAILED, level+1)
		}
		idx, err := locate(list, step, opts.Exact)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return nil, types.NewError(types.E_NO_SUCH_INDEX, level+1)
		}
		cur = list.Elements()[idx]
	}
	return extract(cur, steps[len(steps)-1:], opts)
}

// replaceRecursive rewrites a[[c(i, j)]] <- v as
// tmp <- a[[i]]; tmp[[j]] <- v; a[[i]] <- tmp
func (w *writeCall) replaceRecursive(v *types.Vector, path types.Value, value types.Value) (types.Value, error) {
	steps, err := pathSteps(path)
	if err != nil {
		return nil, err
	}
	stack := []types.Value{v}
	defer func() {
		// drop the ownership taken while descending
		for _, held := range stack[1:] {
			if vec := types.AsVector(held); vec != nil {
				vec.DecRef()
			}
		}
	}()

	var cur types.Value = v
	for level, step := range steps[:len(steps)-1] {
		list := types.AsVector(cur)
		if list == nil || list.Type() != types.TYPE_LIST {
			return nil, types.NewError(types.E_RECURSIVE_INDEXING_FAILED, level+1)
		}
		idx, err := locate(list, step, true)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return nil, types.NewError(types.E_NO_SUCH_INDEX, level+1)
		}
		cur = list.Elements()[idx]
		if vec := types.AsVector(cur); vec != nil {
			// held by the parent and by us: the write below copies it
			vec.IncRef()
		}
		stack = append(stack, cur)
	}

	result, err := w.replace(cur, steps[len(steps)-1:], value)
	if err != nil {
		return nil, err
	}
	for level := len(steps) - 2; level >= 0; level-- {
		parent := types.AsVector(stack[level])
		if result, err = w.replaceVector(parent, steps[level:level+1], result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// pathSteps splits a multi-element subscript into one length-1 value per level
func pathSteps(path types.Value) ([]types.Value, error) {
	vec := types.AsVector(path)
	if vec == nil || !vec.Type().IsAtomic() || vec.Type() == types.TYPE_RAW {
		return nil, types.NewError(types.E_INVALID_SUBSCRIPT_TYPE, path.Type().String())
	}
	steps := make([]types.Value, vec.Len())
	for i := range steps {
		steps[i] = vec.ElementAt(i)
	}
	return steps, nil
}

// locate returns the 0-based index of the list element selected by step, or
// -1 when the list has no such element
func locate(list *types.Vector, step types.Value, exact bool) (int, error) {
	mode := position.Mode{Subscript: true}
	p, err := coordinate(list, []types.Value{step}, mode, exact)
	if err != nil {
		return -1, err
	}
	flat := -1
	p.each(func(_, f int) { flat = f })
	return flat, nil
}
