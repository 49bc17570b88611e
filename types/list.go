package types

// NewList creates a list. Nil elements become NULL; every element gains an owner.
func NewList(vals ...Value) *Vector {
	elems := make([]Value, len(vals))
	for i, v := range vals {
		if v == nil {
			v = Null
		}
		retain(v)
		elems[i] = v
	}
	return newVector(TYPE_LIST, newListStore(elems))
}

// IsListLike reports whether v holds arbitrary values as elements
func IsListLike(v Value) bool {
	return v != nil && v.Type() == TYPE_LIST
}

// AsVector returns v as a *Vector, or nil for NULL and the missing marker
func AsVector(v Value) *Vector {
	vec, _ := v.(*Vector)
	return vec
}

