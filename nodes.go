package exprtree

import (
	"strings"
)

// node is a node in an expression tree. A leaf holds a value and has no
// children. Any other node has a right child, and a left child exactly when
// its operator is applied in binary form.
type node struct {
	// text is the operand or operator text the node was built from.
	text string
	// pos is the column of the token the node was built from.
	pos int

	leaf bool
	val  float64
	op   opKind

	left  *node
	right *node
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the subtree with every operation parenthesized, e.g.
// "(2 + (- 3))".
func (n *node) fmt(b *strings.Builder) {
	if n.leaf {
		b.WriteString(n.text)
		return
	}
	b.WriteByte('(')
	defer b.WriteByte(')')
	if n.left != nil {
		n.left.fmt(b)
		b.WriteByte(' ')
	}
	b.WriteString(n.text)
	if n.right != nil {
		b.WriteByte(' ')
		n.right.fmt(b)
	}
}
