package types

import "fmt"

// TypeID uniquely identifies a datatype inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a datatype. For variables this means "not yet
// assigned by inference", which callers must treat as unknown, not an error.
const NoTypeID TypeID = 0

// IsValid reports whether the ID names an interned datatype.
func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind enumerates all supported kinds of datatypes.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindFunc is the ordinary function datatype.
	KindFunc
	// KindEnumClass is the datatype of an enum declaration used as a class.
	KindEnumClass
	// KindTclass is the datatype of a generic class template, derived from
	// its constructor function.
	KindTclass
	KindBool
	KindInt
	KindUint
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindFunc:
		return "func"
	case KindEnumClass:
		return "enumclass"
	case KindTclass:
		return "tclass"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of integer primitives.
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// Type is a compact descriptor for any supported datatype. Owner carries the
// index of the owning database record for func/enum/tclass datatypes; the
// interner treats it as an opaque key component.
type Type struct {
	Kind  Kind
	Owner uint32
	Width Width
}

// MakeFunc describes the datatype of the function with the given index.
func MakeFunc(owner uint32) Type {
	return Type{Kind: KindFunc, Owner: owner}
}

// MakeEnumClass describes the datatype of an enum function.
func MakeEnumClass(owner uint32) Type {
	return Type{Kind: KindEnumClass, Owner: owner}
}

// MakeTclass describes the datatype of a generic class template.
func MakeTclass(owner uint32) Type {
	return Type{Kind: KindTclass, Owner: owner}
}

// MakeInt describes a signed integer of the given width (WidthAny for "int").
func MakeInt(width Width) Type {
	return Type{Kind: KindInt, Width: width}
}
