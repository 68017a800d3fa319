package desc

import "net/netip"

// The scalar types below are defined over the Go builtins so they can carry
// the TypeDescription method; Go does not allow methods on predeclared
// types. Each answers the capability with a fixed (name, kind, doc) triple.
type (
	// Bool is a boolean configuration value.
	Bool bool
	// String is a UTF-8 string configuration value.
	String string

	// Int8 through Int64 are signed integers of fixed width.
	Int8  int8
	Int16 int16
	Int32 int32
	Int64 int64

	// Uint8 through Uint64 are unsigned integers of fixed width.
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64

	// NonZeroInt8 through NonZeroUint64 carry the additional constraint
	// that the value cannot be zero. The constraint is documentation for
	// the consumer; this package does not enforce it.
	NonZeroInt8   int8
	NonZeroInt16  int16
	NonZeroInt32  int32
	NonZeroInt64  int64
	NonZeroUint8  uint8
	NonZeroUint16 uint16
	NonZeroUint32 uint32
	NonZeroUint64 uint64

	// Float32 and Float64 are floating point values.
	Float32 float32
	Float64 float64

	// SocketAddr is a network endpoint in either address family.
	// SocketAddrV4 and SocketAddrV6 restrict it to one family.
	SocketAddr   netip.AddrPort
	SocketAddrV4 netip.AddrPort
	SocketAddrV6 netip.AddrPort
)

func scalar(name string, kind TypeKind, doc string) TypeDescription {
	return New(name, kind, doc)
}

func (Bool) TypeDescription() TypeDescription {
	return scalar("Boolean", BoolKind{}, "A boolean")
}

func (String) TypeDescription() TypeDescription {
	return scalar("String", StringKind{}, "An UTF-8 string")
}

func (Int8) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 8 bits")
}

func (Int16) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 16 bits")
}

func (Int32) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 32 bits")
}

func (Int64) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 64 bits")
}

func (Uint8) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 8 bits")
}

func (Uint16) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 16 bits")
}

func (Uint32) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 32 bits")
}

func (Uint64) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 64 bits")
}

func (NonZeroInt8) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 8 bits that cannot be zero")
}

func (NonZeroInt16) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 16 bits that cannot be zero")
}

func (NonZeroInt32) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 32 bits that cannot be zero")
}

func (NonZeroInt64) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "A signed integer with 64 bits that cannot be zero")
}

func (NonZeroUint8) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 8 bits that cannot be zero")
}

func (NonZeroUint16) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 16 bits that cannot be zero")
}

func (NonZeroUint32) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 32 bits that cannot be zero")
}

func (NonZeroUint64) TypeDescription() TypeDescription {
	return scalar("Integer", IntegerKind{}, "An unsigned integer with 64 bits that cannot be zero")
}

func (Float32) TypeDescription() TypeDescription {
	return scalar("Float", FloatKind{}, "A floating point value with 32 bits")
}

func (Float64) TypeDescription() TypeDescription {
	return scalar("Float", FloatKind{}, "A floating point value with 64 bits")
}

func (SocketAddr) TypeDescription() TypeDescription {
	return scalar("String", StringKind{}, "A socket address")
}

func (SocketAddrV4) TypeDescription() TypeDescription {
	return scalar("String", StringKind{}, "An IPv4 socket address")
}

func (SocketAddrV6) TypeDescription() TypeDescription {
	return scalar("String", StringKind{}, "An IPv6 socket address")
}
