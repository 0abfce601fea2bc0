package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTypeDefaultsToInvalid(t *testing.T) {
	var typ SymbolType
	assert.True(t, typ.IsInvalid())
	assert.Equal(t, Invalid, typ.Value())

	// Appending to an unassigned type keeps the sentinel.
	typ.Append(Integer)
	assert.True(t, typ.IsInvalid())

	typ.Assign(Integer)
	assert.False(t, typ.IsInvalid())
	assert.Equal(t, Integer, typ.Value())
}

func TestSymbolTypeAssignZeroIsValid(t *testing.T) {
	var typ SymbolType
	typ.Assign(Int8Bit)
	assert.False(t, typ.IsInvalid())
	assert.Equal(t, SymbolTypes(0), typ.Value())
}

func TestNewSymbolTypeZeroStaysInvalid(t *testing.T) {
	typ := NewSymbolType(0)
	assert.True(t, typ.IsInvalid())
	assert.Equal(t, Invalid, typ.Value())

	typ.Assign(0)
	assert.False(t, typ.IsInvalid())
	assert.False(t, NewSymbolType(Integer).IsInvalid())
}

func TestSymbolTypeAppendRoundTrip(t *testing.T) {
	combos := [][]SymbolTypes{
		{Integer, Int32Bit},
		{Unsigned, Int16Bit},
		{Character},
		{Character, List},
		{Struct, List, Type},
		{Integer, Int64Bit, List},
	}

	for _, flags := range combos {
		typ := NewSymbolType(flags[0])
		for _, flag := range flags[1:] {
			typ.Append(flag)
		}
		require.False(t, typ.IsInvalid())
		for _, flag := range flags {
			if flag == Int8Bit {
				continue
			}
			assert.NotZero(t, typ.Mask(flag), "mask %#x against %#x", typ.Value(), flag)
		}
	}
}

func TestSymbolTypeCombineDoesNotMutate(t *testing.T) {
	typ := NewSymbolType(Character)
	assert.Equal(t, String, typ.Combine(List))
	assert.Equal(t, Character, typ.Value())
}

func TestSymbolTypeSubsetRelations(t *testing.T) {
	assert.Equal(t, Integer, Unsigned&Integer)
	assert.Equal(t, Character, String&Character)
	assert.Equal(t, List, String&List)
	assert.Equal(t, Struct, Dict&Struct)
	assert.Equal(t, List, Dict&List)

	str := NewSymbolType(String)
	dict := NewSymbolType(Dict)
	num := NewSymbolType(Integer | Int32Bit)
	assert.NotZero(t, str.Mask(List))
	assert.NotZero(t, dict.Mask(List))
	assert.NotZero(t, dict.Mask(Struct))
	assert.Zero(t, num.Mask(List))
	assert.Zero(t, num.Mask(Struct))
}

func TestSymbolTypeInvalidIsOutOfBand(t *testing.T) {
	all := []SymbolTypes{Integer, Unsigned, Int16Bit, Int32Bit, Int64Bit, Character, List, String, Struct, Dict, Type}
	for _, mask := range all {
		assert.NotEqual(t, Invalid, mask)
	}
	assert.NotEqual(t, Invalid, Dict|Type|Unsigned|Int16Bit)
}

func TestSymbolTypeWidth(t *testing.T) {
	assert.Equal(t, Int32Bit, NewSymbolType(Integer|Int32Bit).Width())
	assert.Equal(t, Int8Bit, NewSymbolType(Unsigned).Width())
	assert.Equal(t, Int64Bit, NewSymbolType(Unsigned|Int64Bit).Width())
	assert.Equal(t, Invalid, SymbolType{}.Width())
}

func TestSymbolTypeEqual(t *testing.T) {
	assert.True(t, NewSymbolType(String).Equal(NewSymbolType(Character|List)))
	assert.False(t, NewSymbolType(String).Equal(NewSymbolType(List)))
	assert.True(t, SymbolType{}.Equal(SymbolType{}))
}

func TestSymbolTypeString(t *testing.T) {
	tests := []struct {
		mask     SymbolType
		expected string
	}{
		{SymbolType{}, "invalid"},
		{NewSymbolType(Integer | Int32Bit), "int32"},
		{NewSymbolType(Unsigned | Int64Bit), "uint64"},
		{NewSymbolType(Unsigned), "uint8"},
		{NewSymbolType(String), "string"},
		{NewSymbolType(Character), "character"},
		{NewSymbolType(Dict), "dict"},
		{NewSymbolType(Struct | Type), "type|struct"},
		{NewSymbolType(List | Integer | Int16Bit), "list|int16"},
		{NewSymbolType(0), "invalid"},
		{SymbolType{assigned: true}, "none"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.mask.String())
	}
}

func TestBuiltinType(t *testing.T) {
	mask, ok := BuiltinType("uint16")
	require.True(t, ok)
	assert.Equal(t, Unsigned|Int16Bit, mask)

	mask, ok = BuiltinType("string")
	require.True(t, ok)
	assert.Equal(t, String, mask)

	_, ok = BuiltinType("float")
	assert.False(t, ok)
}
