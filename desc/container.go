package desc

import "fmt"

// Path is a filesystem path used as a map key. For schema purposes it is
// string-like; it exists so PathMap can be spelled against it.
type Path string

// Optional is a value that may be absent. Its description wraps the inner
// type's description under a synthesized name; documentation is not
// inherited from the inner type.
type Optional[T Describer] struct {
	Value T
	Set   bool
}

// Sequence is a homogeneous ordered sequence of T.
type Sequence[T Describer] []T

// Map is a homogeneous map with plain string keys.
type Map[T Describer] map[string]T

// PathMap is a homogeneous map keyed by filesystem paths. It describes
// itself exactly like Map, because keys are always presented as strings.
type PathMap[T Describer] map[Path]T

func (Optional[T]) TypeDescription() TypeDescription {
	inner := Describe[T]()
	return New(
		fmt.Sprintf("An optional '%s'", inner.Name()),
		WrappedKind{Inner: inner},
		"",
	)
}

func (Sequence[T]) TypeDescription() TypeDescription {
	inner := Describe[T]()
	return New(
		fmt.Sprintf("Array of '%s's", inner.Name()),
		ArrayKind{Elem: inner},
		"",
	)
}

func (Map[T]) TypeDescription() TypeDescription {
	return tableDescription[T]()
}

func (PathMap[T]) TypeDescription() TypeDescription {
	return tableDescription[T]()
}

func tableDescription[T Describer]() TypeDescription {
	inner := Describe[T]()
	return New(
		fmt.Sprintf("Table of '%s's", inner.Name()),
		HashMapKind{Value: inner},
		"",
	)
}
