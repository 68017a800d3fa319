package typedesc_test

import (
	"fmt"

	typedesc "github.com/matthiasbeyer/type-description"
	"github.com/matthiasbeyer/type-description/desc"
)

func ExampleDescribe() {
	d := typedesc.Describe[typedesc.Sequence[typedesc.Float64]]()
	fmt.Println(d.Name())
	// Output: Array of 'Float's
}

func ExampleDescribe_nested() {
	d := typedesc.Describe[typedesc.Map[typedesc.Sequence[typedesc.Map[typedesc.String]]]]()

	table := d.Kind().(desc.HashMapKind)
	array := table.Value.Kind().(desc.ArrayKind)
	inner := array.Elem.Kind().(desc.HashMapKind)

	fmt.Println(d.Name())
	fmt.Printf("%T\n", inner.Value.Kind())
	// Output:
	// Table of 'Array of 'Table of 'String's's's
	// desc.StringKind
}

func ExampleTypeDescription_WithDoc() {
	port := typedesc.New("Port", typedesc.WrappedKind{
		Inner: typedesc.Describe[typedesc.Uint16](),
	}, "").WithDoc("The TCP port the service binds")

	fmt.Println(port.Name())
	fmt.Println(port.Doc())
	// Output:
	// Port
	// The TCP port the service binds
}
