package conformance

import (
	"fmt"
	"math"

	"rvec/types"
)

// Build converts a YAML value description into a value
func (s ValueSpec) Build() (types.Value, error) {
	typ, ok := types.TypeFromString(s.Type)
	if !ok {
		return nil, fmt.Errorf("unknown type: %q", s.Type)
	}
	switch typ {
	case types.TYPE_NULL:
		return types.Null, nil
	case types.TYPE_MISSING:
		return types.Missing, nil
	}

	vec, err := s.elements(typ)
	if err != nil {
		return nil, err
	}
	if err := s.attributes(vec); err != nil {
		return nil, err
	}
	return vec, nil
}

func (s ValueSpec) elements(typ types.ElementType) (*types.Vector, error) {
	if typ == types.TYPE_LIST {
		if len(s.Values) != 0 {
			return nil, fmt.Errorf("list values go in elements")
		}
		elems := make([]types.Value, len(s.Elements))
		for i, e := range s.Elements {
			v, err := e.Build()
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i+1, err)
			}
			if types.IsMissing(v) {
				return nil, fmt.Errorf("element %d: a list cannot hold the missing marker", i+1)
			}
			elems[i] = v
		}
		return types.NewList(elems...), nil
	}
	if len(s.Elements) != 0 {
		return nil, fmt.Errorf("%s vector has elements; use values", typ)
	}

	vec := types.NewVector(typ, len(s.Values))
	for i, raw := range s.Values {
		if raw == nil {
			vec.SetNA(i)
			continue
		}
		if err := setElement(vec, i, raw); err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
	}
	return vec, nil
}

func setElement(vec *types.Vector, i int, raw interface{}) error {
	switch vec.Type() {
	case types.TYPE_LOGICAL:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected a bool, got %T", raw)
		}
		vec.Logicals()[i] = types.LogicalOf(b)
	case types.TYPE_INT:
		n, ok := raw.(int)
		if !ok || n == types.IntNA || n > types.IntMax || n < -types.IntMax {
			return fmt.Errorf("expected a 32-bit integer, got %v", raw)
		}
		vec.Ints()[i] = n
	case types.TYPE_DOUBLE:
		f, err := toDouble(raw)
		if err != nil {
			return err
		}
		vec.Doubles()[i] = f
	case types.TYPE_STR:
		str, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", raw)
		}
		vec.Strings()[i] = str
	case types.TYPE_RAW:
		n, ok := raw.(int)
		if !ok || n < 0 || n > 255 {
			return fmt.Errorf("expected a byte, got %v", raw)
		}
		vec.Raws()[i] = byte(n)
	}
	return nil
}

func toDouble(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "Inf":
			return math.Inf(1), nil
		case "-Inf":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("expected a number, got %v", raw)
}

func (s ValueSpec) attributes(vec *types.Vector) error {
	if s.Names != nil {
		if len(s.Names) != vec.Len() {
			return fmt.Errorf("%d names for %d elements", len(s.Names), vec.Len())
		}
		names := make([]string, len(s.Names))
		for i, raw := range s.Names {
			switch n := raw.(type) {
			case nil:
				names[i] = types.StringNA
			case string:
				names[i] = n
			default:
				return fmt.Errorf("name %d: expected a string, got %T", i+1, raw)
			}
		}
		vec.SetNames(names)
	}

	if s.Dim == nil {
		if s.DimNames != nil || s.Labels != nil {
			return fmt.Errorf("dimnames without dim")
		}
		return nil
	}
	if err := types.CheckDim(vec.Len(), s.Dim); err != nil {
		return err
	}
	vec.SetDim(s.Dim)

	if s.DimNames != nil {
		if len(s.DimNames) != len(s.Dim) {
			return fmt.Errorf("%d dimnames for %d dims", len(s.DimNames), len(s.Dim))
		}
		for d, dn := range s.DimNames {
			if dn != nil && len(dn) != s.Dim[d] {
				return fmt.Errorf("dimnames %d has %d entries for extent %d", d+1, len(dn), s.Dim[d])
			}
		}
		vec.SetDimNames(s.DimNames)
	}
	if s.Labels != nil {
		if s.DimNames == nil || len(s.Labels) != len(s.Dim) {
			return fmt.Errorf("labels need dimnames and one label per dim")
		}
		vec.SetDimNamesLabels(s.Labels)
	}
	return nil
}
