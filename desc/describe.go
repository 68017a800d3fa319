package desc

// Describer is the capability a type implements to describe its own shape.
//
// Implementations must be pure: no side effects, no shared state, and no
// failure path. The method must not depend on the receiver value, because
// descriptions are requested from zero values.
type Describer interface {
	TypeDescription() TypeDescription
}

// Describe returns the description of T without requiring a value of T.
// Dispatch is resolved at compile time; a type that does not implement
// Describer cannot be passed here at all.
func Describe[T Describer]() TypeDescription {
	var zero T
	return zero.TypeDescription()
}
