package ast

import "fmt"

// Inspect traverses the tree rooted at node depth first, calling fn for each
// node before its descendants. If fn returns false the node's descendants
// are skipped. An Index visits its target and index before its children.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Invalid, *Ident, *DottedIdent, *CallArguments:
	case *Index:
		Inspect(n.target, fn)
		Inspect(n.index, fn)
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}

	for _, child := range node.Children() {
		Inspect(child, fn)
	}
}
