package types

// storage is the typed backing array of a Vector. The element type is fixed
// when the vector is created, so every operation dispatches once per call and
// the loops inside run over a concrete slice.
type storage interface {
	length() int
	isNA(i int) bool
	setNA(i int)
	copyFrom(dst int, src storage, srcIdx int)
	sameAt(i int, other storage, j int) bool
	format(i int) string
	alloc(n int) storage
	resized(n int) storage
	clone() storage
	compact(keep []bool) storage
}

type store[T any] struct {
	vals  []T
	zero  T
	na    T
	isNAf func(T) bool
	same  func(a, b T) bool
	fmt   func(T) string
}

func (s *store[T]) length() int { return len(s.vals) }

func (s *store[T]) isNA(i int) bool { return s.isNAf(s.vals[i]) }

func (s *store[T]) setNA(i int) { s.vals[i] = s.na }

func (s *store[T]) copyFrom(dst int, src storage, srcIdx int) {
	s.vals[dst] = src.(*store[T]).vals[srcIdx]
}

func (s *store[T]) sameAt(i int, other storage, j int) bool {
	o, ok := other.(*store[T])
	if !ok {
		return false
	}
	return s.same(s.vals[i], o.vals[j])
}

func (s *store[T]) format(i int) string { return s.fmt(s.vals[i]) }

// like returns an empty store sharing s's element behaviour
func (s *store[T]) like(vals []T) *store[T] {
	return &store[T]{vals: vals, zero: s.zero, na: s.na, isNAf: s.isNAf, same: s.same, fmt: s.fmt}
}

func (s *store[T]) alloc(n int) storage {
	vals := make([]T, n)
	for i := range vals {
		vals[i] = s.zero
	}
	return s.like(vals)
}

// resized keeps the first min(n, len) elements and fills the rest with NA
func (s *store[T]) resized(n int) storage {
	vals := make([]T, n)
	k := copy(vals, s.vals)
	for i := k; i < n; i++ {
		vals[i] = s.na
	}
	return s.like(vals)
}

func (s *store[T]) clone() storage {
	vals := make([]T, len(s.vals))
	copy(vals, s.vals)
	return s.like(vals)
}

func (s *store[T]) compact(keep []bool) storage {
	vals := make([]T, 0, len(s.vals))
	for i, v := range s.vals {
		if keep[i] {
			vals = append(vals, v)
		}
	}
	return s.like(vals)
}

func never[T any](T) bool { return false }

func eq[T comparable](a, b T) bool { return a == b }

func newLogicalStore(vals []Logical) *store[Logical] {
	return &store[Logical]{
		vals: vals, zero: False, na: LogicalNA,
		isNAf: func(l Logical) bool { return l == LogicalNA },
		same:  eq[Logical],
		fmt:   Logical.String,
	}
}

func newIntStore(vals []int) *store[int] {
	return &store[int]{
		vals: vals, zero: 0, na: IntNA,
		isNAf: IsIntNA,
		same:  eq[int],
		fmt:   formatInt,
	}
}

func newDoubleStore(vals []float64) *store[float64] {
	return &store[float64]{
		vals: vals, zero: 0, na: DoubleNA,
		isNAf: IsNAorNaN,
		same:  sameDouble,
		fmt:   FormatDouble,
	}
}

func newStringStore(vals []string) *store[string] {
	return &store[string]{
		vals: vals, zero: "", na: StringNA,
		isNAf: IsStringNA,
		same:  eq[string],
		fmt:   formatString,
	}
}

func newRawStore(vals []byte) *store[byte] {
	return &store[byte]{
		vals: vals, zero: 0, na: 0,
		isNAf: never[byte],
		same:  eq[byte],
		fmt:   formatRaw,
	}
}

func newListStore(vals []Value) *store[Value] {
	return &store[Value]{
		vals: vals, zero: Null, na: Null,
		isNAf: never[Value],
		same:  func(a, b Value) bool { return a.Equal(b) },
		fmt:   func(v Value) string { return v.String() },
	}
}

func formatRaw(b byte) string {
	const hex = "0123456789abcdef"
	return "as.raw(0x" + string([]byte{hex[b>>4], hex[b&0xf]}) + ")"
}
