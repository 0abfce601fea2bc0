package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	INVALID NodeType = iota
	IDENT
	DOTTED_IDENT
	INDEX
	CALL_ARGUMENTS
)
