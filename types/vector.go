package types

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// Ownership tells whether the holder of a vector may mutate it in place
type Ownership int

const (
	Exclusive Ownership = iota // at most one owner, safe to mutate
	Shared                     // copy before any mutation
)

// Vector is an ordered sequence of elements of one type with optional
// names, dim and dimnames attributes.
//
// A vector counts its owners. A freshly built vector has no owner; the host
// calls IncRef when it binds it and lists call IncRef for their elements.
// Once more than one owner exists the vector is Shared and must be copied
// before it is written.
type Vector struct {
	typ  ElementType
	data storage

	names          []string
	dim            []int
	dimNames       [][]string
	dimNamesLabels []string

	refs atomic.Int32
}

func newVector(t ElementType, s storage) *Vector {
	return &Vector{typ: t, data: s}
}

// NewLogical creates a logical vector
func NewLogical(vals ...Logical) *Vector {
	return newVector(TYPE_LOGICAL, newLogicalStore(slices.Clone(vals)))
}

// NewInt creates an integer vector
func NewInt(vals ...int) *Vector {
	return newVector(TYPE_INT, newIntStore(slices.Clone(vals)))
}

// NewDouble creates a double vector
func NewDouble(vals ...float64) *Vector {
	return newVector(TYPE_DOUBLE, newDoubleStore(slices.Clone(vals)))
}

// NewString creates a character vector
func NewString(vals ...string) *Vector {
	return newVector(TYPE_STR, newStringStore(slices.Clone(vals)))
}

// NewRaw creates a raw vector
func NewRaw(vals ...byte) *Vector {
	return newVector(TYPE_RAW, newRawStore(slices.Clone(vals)))
}

// NewVector allocates a vector of n zero elements (NULL for lists)
func NewVector(t ElementType, n int) *Vector {
	var s storage
	switch t {
	case TYPE_LOGICAL:
		s = newLogicalStore(nil)
	case TYPE_INT:
		s = newIntStore(nil)
	case TYPE_DOUBLE:
		s = newDoubleStore(nil)
	case TYPE_STR:
		s = newStringStore(nil)
	case TYPE_RAW:
		s = newRawStore(nil)
	case TYPE_LIST:
		s = newListStore(nil)
	default:
		panic(fmt.Sprintf("types: cannot allocate a vector of type %s", t))
	}
	return newVector(t, s.alloc(n))
}

// Type returns the element type
func (v *Vector) Type() ElementType { return v.typ }

// Len returns the number of elements
func (v *Vector) Len() int { return v.data.length() }

// Logicals returns the backing slice of a logical vector, nil otherwise
func (v *Vector) Logicals() []Logical { return valsOf[Logical](v) }

// Ints returns the backing slice of an integer vector, nil otherwise
func (v *Vector) Ints() []int { return valsOf[int](v) }

// Doubles returns the backing slice of a double vector, nil otherwise
func (v *Vector) Doubles() []float64 { return valsOf[float64](v) }

// Strings returns the backing slice of a character vector, nil otherwise
func (v *Vector) Strings() []string { return valsOf[string](v) }

// Raws returns the backing slice of a raw vector, nil otherwise
func (v *Vector) Raws() []byte { return valsOf[byte](v) }

// Elements returns the backing slice of a list, nil otherwise
func (v *Vector) Elements() []Value { return valsOf[Value](v) }

func valsOf[T any](v *Vector) []T {
	if s, ok := v.data.(*store[T]); ok {
		return s.vals
	}
	return nil
}

// IsNA reports whether element i (0-based) is NA. List elements and raw bytes never are.
func (v *Vector) IsNA(i int) bool { return v.data.isNA(i) }

// SetNA stores the type's NA at element i (NULL for lists)
func (v *Vector) SetNA(i int) {
	if v.typ == TYPE_LIST {
		v.SetElement(i, Null)
		return
	}
	v.data.setNA(i)
}

// IsComplete reports whether no element is NA
func (v *Vector) IsComplete() bool {
	for i := 0; i < v.Len(); i++ {
		if v.data.isNA(i) {
			return false
		}
	}
	return true
}

// CopyElement copies src[srcIdx] into v[dst]. Both vectors must have the same type.
// A copied list element gains an owner.
func (v *Vector) CopyElement(dst int, src *Vector, srcIdx int) {
	if v.typ != src.typ {
		panic(fmt.Sprintf("types: CopyElement from %s into %s", src.typ, v.typ))
	}
	if v.typ == TYPE_LIST {
		v.SetElement(dst, src.Elements()[srcIdx])
		return
	}
	v.data.copyFrom(dst, src.data, srcIdx)
}

// SetElement stores x as list element i, moving ownership from the old element
func (v *Vector) SetElement(i int, x Value) {
	elems := v.Elements()
	if elems == nil {
		panic(fmt.Sprintf("types: SetElement on a %s vector", v.typ))
	}
	if x == nil {
		x = Null
	}
	retain(x)
	release(elems[i])
	elems[i] = x
}

// ElementAt returns element i as a value: the element itself for lists,
// a length-1 vector without attributes otherwise
func (v *Vector) ElementAt(i int) Value {
	if v.typ == TYPE_LIST {
		return v.Elements()[i]
	}
	out := newVector(v.typ, v.data.alloc(1))
	out.data.copyFrom(0, v.data, i)
	return out
}

// Names returns the names attribute, nil when absent
func (v *Vector) Names() []string { return v.names }

// SetNames replaces the names attribute; nil removes it
func (v *Vector) SetNames(names []string) {
	if names != nil && len(names) != v.Len() {
		panic(fmt.Sprintf("types: names length %d does not match vector length %d", len(names), v.Len()))
	}
	v.names = names
}

// Dim returns the dim attribute, nil when absent
func (v *Vector) Dim() []int { return v.dim }

// SetDim replaces the dim attribute and clears dimnames; nil removes it
func (v *Vector) SetDim(dim []int) {
	if dim != nil {
		if err := CheckDim(v.Len(), dim); err != nil {
			panic("types: " + err.Error())
		}
	}
	v.dim = dim
	v.dimNames = nil
	v.dimNamesLabels = nil
}

// CheckDim verifies that dim describes a vector of the given length
func CheckDim(length int, dim []int) error {
	n := 1
	for _, d := range dim {
		if d < 0 {
			return fmt.Errorf("negative extent %d in dim", d)
		}
		n *= d
	}
	if n != length {
		return fmt.Errorf("dims [product %d] do not match the length of object [%d]", n, length)
	}
	return nil
}

// DimNames returns one name vector per dimension (nil entries are absent),
// or nil when the attribute is absent
func (v *Vector) DimNames() [][]string { return v.dimNames }

// SetDimNames replaces the dimnames attribute; nil removes it
func (v *Vector) SetDimNames(dn [][]string) {
	if dn != nil {
		if len(dn) != len(v.dim) {
			panic(fmt.Sprintf("types: length of dimnames [%d] must match that of dims [%d]", len(dn), len(v.dim)))
		}
		for i, names := range dn {
			if names != nil && len(names) != v.dim[i] {
				panic(fmt.Sprintf("types: length of dimnames [%d] not equal to array extent", i+1))
			}
		}
	}
	v.dimNames = dn
	if dn == nil {
		v.dimNamesLabels = nil
	}
}

// DimNamesLabels returns the names of the dimnames list, nil when absent
func (v *Vector) DimNamesLabels() []string { return v.dimNamesLabels }

// SetDimNamesLabels names the dimensions
func (v *Vector) SetDimNamesLabels(labels []string) {
	if labels != nil && len(labels) != len(v.dim) {
		panic(fmt.Sprintf("types: %d dimnames labels for %d dims", len(labels), len(v.dim)))
	}
	v.dimNamesLabels = labels
}

// WithNames sets names and returns v
func (v *Vector) WithNames(names ...string) *Vector {
	v.SetNames(names)
	return v
}

// WithDim sets dim and returns v
func (v *Vector) WithDim(dim ...int) *Vector {
	v.SetDim(dim)
	return v
}

// WithDimNames sets dimnames and returns v
func (v *Vector) WithDimNames(dn ...[]string) *Vector {
	v.SetDimNames(dn)
	return v
}

// IncRef records a new owner and returns v
func (v *Vector) IncRef() *Vector {
	v.refs.Add(1)
	return v
}

// DecRef drops an owner
func (v *Vector) DecRef() {
	if v.refs.Add(-1) < 0 {
		v.refs.Store(0)
	}
}

// RefCount returns the number of recorded owners
func (v *Vector) RefCount() int { return int(v.refs.Load()) }

// Ownership classifies v for a pending write
func (v *Vector) Ownership() Ownership {
	if v.refs.Load() > 1 {
		return Shared
	}
	return Exclusive
}

// IsShared reports whether v must be copied before mutation
func (v *Vector) IsShared() bool { return v.Ownership() == Shared }

// Copy returns an unowned copy with its own backing array and attributes.
// List elements are not copied; they gain an owner instead.
func (v *Vector) Copy() *Vector {
	c := newVector(v.typ, v.data.clone())
	c.names = slices.Clone(v.names)
	c.dim = slices.Clone(v.dim)
	c.dimNames = cloneDimNames(v.dimNames)
	c.dimNamesLabels = slices.Clone(v.dimNamesLabels)
	for _, e := range c.Elements() {
		retain(e)
	}
	return c
}

// Exclusive returns v when it may be mutated in place, otherwise a copy
func (v *Vector) Exclusive() *Vector {
	if v.IsShared() {
		return v.Copy()
	}
	return v
}

// Resized returns a copy of length n. New slots hold NA, names are padded
// with "", dim and dimnames are dropped.
func (v *Vector) Resized(n int) *Vector {
	r := newVector(v.typ, v.data.resized(n))
	if v.names != nil {
		names := make([]string, n)
		copy(names, v.names)
		r.names = names
	}
	for _, e := range r.Elements() {
		retain(e)
	}
	return r
}

// Compact returns a copy holding only the elements with keep[i] set.
// Names follow their elements; dim and dimnames are dropped.
func (v *Vector) Compact(keep []bool) *Vector {
	r := newVector(v.typ, v.data.compact(keep))
	if v.names != nil {
		names := make([]string, 0, r.Len())
		for i, n := range v.names {
			if keep[i] {
				names = append(names, n)
			}
		}
		r.names = names
	}
	for _, e := range r.Elements() {
		retain(e)
	}
	return r
}

// Release drops the ownership v holds on its list elements
func (v *Vector) Release() {
	for _, e := range v.Elements() {
		release(e)
	}
}

// Equal compares type, elements and attributes. NA equals NA.
func (v *Vector) Equal(other Value) bool {
	o, ok := other.(*Vector)
	if !ok {
		return false
	}
	if v == o {
		return true
	}
	if v.typ != o.typ || v.Len() != o.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !v.data.sameAt(i, o.data, i) {
			return false
		}
	}
	return slices.Equal(v.names, o.names) &&
		slices.Equal(v.dim, o.dim) &&
		equalDimNames(v.dimNames, o.dimNames) &&
		slices.Equal(v.dimNamesLabels, o.dimNamesLabels)
}

// String renders v like dput
func (v *Vector) String() string {
	var sb strings.Builder
	body := v.body()
	if v.dim == nil && v.dimNames == nil {
		return body
	}
	sb.WriteString("structure(")
	sb.WriteString(body)
	if v.dim != nil {
		sb.WriteString(", dim = c(")
		for i, d := range v.dim {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%dL", d)
		}
		sb.WriteString(")")
	}
	if v.dimNames != nil {
		sb.WriteString(", dimnames = list(")
		for i, names := range v.dimNames {
			if i > 0 {
				sb.WriteString(", ")
			}
			if v.dimNamesLabels != nil {
				sb.WriteString(v.dimNamesLabels[i] + " = ")
			}
			sb.WriteString(formatStrings(names))
		}
		sb.WriteString(")")
	}
	sb.WriteString(")")
	return sb.String()
}

func (v *Vector) body() string {
	n := v.Len()
	if n == 0 {
		switch v.typ {
		case TYPE_LIST:
			return "list()"
		case TYPE_STR:
			return "character(0)"
		case TYPE_DOUBLE:
			return "numeric(0)"
		default:
			return v.typ.String() + "(0)"
		}
	}
	if n == 1 && v.names == nil && v.typ != TYPE_LIST {
		return v.data.format(0)
	}
	var sb strings.Builder
	if v.typ == TYPE_LIST {
		sb.WriteString("list(")
	} else {
		sb.WriteString("c(")
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v.names != nil {
			sb.WriteString(formatName(v.names[i]) + " = ")
		}
		sb.WriteString(v.data.format(i))
	}
	sb.WriteString(")")
	return sb.String()
}

func formatName(s string) string {
	if s == StringNA {
		return "`NA`"
	}
	if s == "" {
		return `""`
	}
	return s
}

func formatStrings(names []string) string {
	if names == nil {
		return "NULL"
	}
	parts := make([]string, len(names))
	for i, s := range names {
		parts[i] = formatString(s)
	}
	return "c(" + strings.Join(parts, ", ") + ")"
}

func cloneDimNames(dn [][]string) [][]string {
	if dn == nil {
		return nil
	}
	c := make([][]string, len(dn))
	for i, names := range dn {
		c[i] = slices.Clone(names)
	}
	return c
}

func equalDimNames(a, b [][]string) bool {
	if len(a) != len(b) || (a == nil) != (b == nil) {
		return false
	}
	for i := range a {
		if (a[i] == nil) != (b[i] == nil) || !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func retain(v Value) {
	if vec, ok := v.(*Vector); ok {
		vec.IncRef()
	}
}

func release(v Value) {
	if vec, ok := v.(*Vector); ok {
		vec.DecRef()
	}
}
