package algorithms

// Family is a mutable, unordered set of algorithm identifiers.
// A Family is not safe for concurrent mutation; callers sharing one
// across goroutines must synchronize access themselves.
type Family[T comparable] struct {
	values map[T]struct{}
}

// NewFamily creates an empty family
func NewFamily[T comparable]() *Family[T] {
	return &Family[T]{values: make(map[T]struct{})}
}

// Add inserts x and reports whether it was not already present
func (f *Family[T]) Add(x T) bool {
	if _, exists := f.values[x]; exists {
		return false
	}
	f.values[x] = struct{}{}
	return true
}

// AddAll adds xs in order and reports whether every element was new.
// It stops at the first element already present: the remaining
// elements are neither checked nor added.
func (f *Family[T]) AddAll(xs ...T) bool {
	for _, x := range xs {
		if !f.Add(x) {
			return false
		}
	}
	return true
}

// AddEach adds every element of xs and reports whether all of them were new
func (f *Family[T]) AddEach(xs ...T) bool {
	result := true
	for _, x := range xs {
		if !f.Add(x) {
			result = false
		}
	}
	return result
}

// Remove deletes x and reports whether it was present
func (f *Family[T]) Remove(x T) bool {
	if _, exists := f.values[x]; !exists {
		return false
	}
	delete(f.values, x)
	return true
}

// RemoveAll removes xs in order, stopping at the first element not present.
func (f *Family[T]) RemoveAll(xs ...T) bool {
	for _, x := range xs {
		if !f.Remove(x) {
			return false
		}
	}
	return true
}

// RemoveEach removes every element of xs and reports whether all were present
func (f *Family[T]) RemoveEach(xs ...T) bool {
	result := true
	for _, x := range xs {
		if !f.Remove(x) {
			result = false
		}
	}
	return result
}

// Combine adds the members of other with AddAll. Iteration over other is
// unordered, so when the families overlap the set of members actually
// added depends on which shared element is reached first. Use Merge for a
// complete union.
func (f *Family[T]) Combine(other *Family[T]) bool {
	return f.AddAll(other.Values()...)
}

// Merge adds every member of other and reports whether all of them were new
func (f *Family[T]) Merge(other *Family[T]) bool {
	return f.AddEach(other.Values()...)
}

// RetainAll returns a new family holding the members of f that appear in
// allowed. f itself is left unchanged.
func (f *Family[T]) RetainAll(allowed ...T) *Family[T] {
	keep := make(map[T]struct{}, len(allowed))
	for _, x := range allowed {
		keep[x] = struct{}{}
	}

	out := NewFamily[T]()
	for x := range f.values {
		if _, ok := keep[x]; ok {
			out.values[x] = struct{}{}
		}
	}
	return out
}

// Contains reports whether x is a member under full-value equality
func (f *Family[T]) Contains(x T) bool {
	_, ok := f.values[x]
	return ok
}

// Find returns the first member, in unspecified order, for which match
// returns true. It is a structural lookup and does not use set equality.
func (f *Family[T]) Find(match func(T) bool) (T, bool) {
	for x := range f.values {
		if match(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

func (f *Family[T]) Len() int {
	return len(f.values)
}

// Values returns a snapshot of the members in unspecified order
func (f *Family[T]) Values() []T {
	out := make([]T, 0, len(f.values))
	for x := range f.values {
		out = append(out, x)
	}
	return out
}

// Clone returns an independent copy of f
func (f *Family[T]) Clone() *Family[T] {
	out := &Family[T]{values: make(map[T]struct{}, len(f.values))}
	for x := range f.values {
		out.values[x] = struct{}{}
	}
	return out
}

// Equal reports whether f and other hold exactly the same members
func (f *Family[T]) Equal(other *Family[T]) bool {
	if f.Len() != other.Len() {
		return false
	}
	for x := range f.values {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}
