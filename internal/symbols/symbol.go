package symbols

import "fmt"

// MangroveSymbol is one named binding. The name is fixed at construction;
// the type and struct payload may be refined later, for example when a
// forward declaration is completed.
type MangroveSymbol struct {
	ident     string
	typ       SymbolType
	structure *SymbolStruct
}

func NewSymbol(ident string) *MangroveSymbol {
	return &MangroveSymbol{ident: ident}
}

func NewTypedSymbol(ident string, typ SymbolType) *MangroveSymbol {
	return &MangroveSymbol{ident: ident, typ: typ}
}

func (s *MangroveSymbol) Value() string { return s.ident }

// Type returns the symbol's type in place so callers can Assign or Append.
func (s *MangroveSymbol) Type() *SymbolType { return &s.typ }

func (s *MangroveSymbol) SetType(typ SymbolType) { s.typ = typ }

func (s *MangroveSymbol) Structure() *SymbolStruct { return s.structure }

// AllocStruct gives the symbol a member scope and marks it as a struct. The
// member table becomes the context's current table; the caller pops it once
// the struct body ends.
func (s *MangroveSymbol) AllocStruct(ctx Context) *SymbolStruct {
	s.structure = NewSymbolStruct(ctx)
	s.typ.Assign(Struct)
	return s.structure
}

func (s *MangroveSymbol) Equal(other *MangroveSymbol) bool {
	if other == nil {
		return false
	}
	return s.ident == other.ident && s.typ.Equal(other.typ)
}

func (s *MangroveSymbol) String() string {
	return fmt.Sprintf("<Symbol '%s': %s>", s.ident, s.typ)
}

// SymbolStruct is the member scope of a struct-typed symbol together with its
// members in declaration order.
type SymbolStruct struct {
	contents *SymbolTable
	members  []*MangroveSymbol
}

// NewSymbolStruct creates a child of the context's current table and seeds
// the member list. Members are not inserted into the new table; callers that
// need name lookup inside the body register them with Insert.
func NewSymbolStruct(ctx Context, members ...*MangroveSymbol) *SymbolStruct {
	s := &SymbolStruct{contents: NewSymbolTable(ctx)}
	if len(members) > 0 {
		s.members = append(s.members, members...)
	}
	return s
}

func (s *SymbolStruct) SymbolTable() *SymbolTable     { return s.contents }
func (s *SymbolStruct) Members() []*MangroveSymbol    { return s.members }
func (s *SymbolStruct) AddMember(sym *MangroveSymbol) { s.members = append(s.members, sym) }

// Member returns the member called ident, searching declaration order.
func (s *SymbolStruct) Member(ident string) *MangroveSymbol {
	for _, m := range s.members {
		if m.ident == ident {
			return m
		}
	}
	return nil
}
