package symbols

import "strings"

// SymbolTypes is the bitmask type algebra. Flags overlap so a
// single mask test answers structural questions: String&List != 0 for every
// sequence, Dict&Struct != 0 for every struct-like value.
type SymbolTypes uint8

const (
	Integer  SymbolTypes = 0x01
	Unsigned SymbolTypes = Integer | 0x02

	// Widths share the two bits above the sign flag and are mutually
	// exclusive; Int8Bit is the absence of both.
	Int8Bit  SymbolTypes = 0x00
	Int16Bit SymbolTypes = 0x04
	Int32Bit SymbolTypes = 0x08
	Int64Bit SymbolTypes = 0x0C

	Character SymbolTypes = 0x10
	List      SymbolTypes = 0x20
	String    SymbolTypes = Character | List
	Struct    SymbolTypes = 0x40
	Dict      SymbolTypes = Struct | List

	// Type marks a symbol that denotes a type rather than a value.
	Type SymbolTypes = 0x80

	// Invalid is the uninitialized sentinel. It is out of band: no real
	// combination of the flags above equals it.
	Invalid SymbolTypes = 0xFF
)

const widthMask SymbolTypes = 0x0C

// SymbolType wraps one mask. Its zero value is Invalid until assigned.
type SymbolType struct {
	mask     SymbolTypes
	assigned bool
}

// NewSymbolType wraps mask. A zero mask leaves the type Invalid; use Assign
// to set Int8Bit explicitly.
func NewSymbolType(mask SymbolTypes) SymbolType {
	var t SymbolType
	if mask != 0 {
		t.Assign(mask)
	}
	return t
}

// Value returns the raw mask, Invalid if nothing has been assigned.
func (t SymbolType) Value() SymbolTypes {
	if !t.assigned {
		return Invalid
	}
	return t.mask
}

func (t *SymbolType) Assign(mask SymbolTypes) {
	t.mask = mask
	t.assigned = true
}

// Combine returns the union of the current mask and flag without mutating.
func (t SymbolType) Combine(flag SymbolTypes) SymbolTypes { return t.Value() | flag }

func (t *SymbolType) Append(flag SymbolTypes) { t.Assign(t.Value() | flag) }

// Mask returns the intersection with flag; non-zero means membership.
func (t SymbolType) Mask(flag SymbolTypes) SymbolTypes { return t.Value() & flag }

func (t SymbolType) Equal(other SymbolType) bool { return t.Value() == other.Value() }

func (t SymbolType) IsInvalid() bool { return t.Value() == Invalid }

// Width returns the integer width bits. Only meaningful for integer masks.
func (t SymbolType) Width() SymbolTypes {
	if t.IsInvalid() {
		return Invalid
	}
	return t.mask & widthMask
}

func (t SymbolType) String() string {
	if t.IsInvalid() {
		return "invalid"
	}

	var parts []string
	mask := t.mask
	if mask&Type != 0 {
		parts = append(parts, "type")
	}
	switch {
	case mask&Dict == Dict:
		parts = append(parts, "dict")
	case mask&String == String:
		parts = append(parts, "string")
	case mask&Struct != 0:
		parts = append(parts, "struct")
	case mask&List != 0:
		parts = append(parts, "list")
	case mask&Character != 0:
		parts = append(parts, "character")
	}
	if mask&Integer != 0 {
		name := "int"
		if mask&Unsigned == Unsigned {
			name = "uint"
		}
		switch mask & widthMask {
		case Int8Bit:
			name += "8"
		case Int16Bit:
			name += "16"
		case Int32Bit:
			name += "32"
		case Int64Bit:
			name += "64"
		}
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

var builtinTypes = map[string]SymbolTypes{
	"int8":   Integer | Int8Bit,
	"int16":  Integer | Int16Bit,
	"int32":  Integer | Int32Bit,
	"int64":  Integer | Int64Bit,
	"uint8":  Unsigned | Int8Bit,
	"uint16": Unsigned | Int16Bit,
	"uint32": Unsigned | Int32Bit,
	"uint64": Unsigned | Int64Bit,
	"char":   Character,
	"string": String,
	"bool":   Unsigned | Int8Bit,
}

// BuiltinType maps a builtin type name to the mask of values of that type.
func BuiltinType(name string) (SymbolTypes, bool) {
	mask, ok := builtinTypes[name]
	return mask, ok
}
