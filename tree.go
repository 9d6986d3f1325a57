package exprtree

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Tree is a built expression. It does not change after it is built, and it
// is safe to evaluate concurrently.
type Tree struct {
	// root is the root node of the expression, or nil if the expression was
	// empty.
	root *node
}

// Build builds an expression tree from an expression string. The given
// options are applied in order. An expression with no tokens builds an empty
// tree.
func Build(expr string, opts ...BuildOption) (*Tree, error) {
	return BuildFrom(strings.NewReader(expr), opts...)
}

// BuildFrom builds an expression tree from all of src.
func BuildFrom(src io.RuneScanner, opts ...BuildOption) (*Tree, error) {
	p := newbuildctx(opts)
	tokens, err := tokenize(src, &p)
	if err != nil {
		return nil, err
	}
	rpn, err := topostfix(tokens, &p)
	if err != nil {
		return nil, err
	}
	n, err := fromPostfix(rpn)
	if err != nil {
		return nil, err
	}
	return &Tree{root: n}, nil
}

// fromPostfix assembles postfix tokens into a tree and returns its root.
func fromPostfix(rpn []Token) (*node, error) {
	stack := make([]*node, 0, len(rpn))
	for _, tok := range rpn {
		switch {
		case tok.Kind == TokenNumeric:
			n, err := leaf(tok)
			if err != nil {
				return nil, err
			}
			stack = append(stack, n)
		case tok.Kind == TokenOperator && !tok.Unary:
			if len(stack) < 2 {
				return nil, &StructuralError{Col: tok.Pos, Op: tok.Text, Want: 2, Have: len(stack)}
			}
			// The right operand was pushed last.
			l, r := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, &node{text: tok.Text, pos: tok.Pos, op: lookupOp(tok.Text), left: l, right: r})
		case tok.Kind == TokenOperator, tok.Kind == TokenFunctional:
			if len(stack) < 1 {
				return nil, &StructuralError{Col: tok.Pos, Op: tok.Text, Want: 1, Have: 0}
			}
			r := stack[len(stack)-1]
			stack[len(stack)-1] = &node{text: tok.Text, pos: tok.Pos, op: lookupOp(tok.Text), right: r}
		case tok.Kind == TokenLeftParen, tok.Kind == TokenRightParen:
			return nil, &ParenError{Col: tok.Pos, Open: tok.Kind == TokenLeftParen}
		default:
			panic("exprtree: unexpected postfix token " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return nil, nil
	case 1:
		return stack[0], nil
	default:
		return nil, &StructuralError{Col: stack[1].pos, Want: 1, Have: len(stack)}
	}
}

// leaf creates a leaf node for a numeric token.
func leaf(tok Token) (*node, error) {
	n := &node{text: tok.Text, pos: tok.Pos, leaf: true}
	if v, ok := constants[tok.Text]; ok {
		n.val = v
		return n, nil
	}
	v, err := strconv.ParseFloat(tok.Text, 64)
	// Out of range literals are ±Inf, as for any other float64 overflow.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
	}
	n.val = v
	return n, nil
}

// String creates a string representation of the tree with every operation
// parenthesized, e.g. "(2 + (3 * 4))". An empty tree is the empty string.
func (t *Tree) String() string {
	if t == nil || t.root == nil {
		return ""
	}
	return t.root.String()
}

// Empty reports whether the tree was built from an expression with no terms.
func (t *Tree) Empty() bool {
	return t == nil || t.root == nil
}
