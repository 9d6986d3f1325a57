package exprtree

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two trees are equal. Positions are not compared.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.leaf != m.leaf || n.text != m.text || n.op != m.op {
		return n, m
	}
	if n.leaf {
		if math.Float64bits(n.val) != math.Float64bits(m.val) {
			return n, m
		}
		return nil, nil
	}
	if d, e := n.left.diff(m.left); d != nil || e != nil {
		return d, e
	}
	return n.right.diff(m.right)
}

func num(text string, v float64) *node {
	return &node{text: text, leaf: true, val: v}
}

func bin(text string, l, r *node) *node {
	return &node{text: text, op: lookupOp(text), left: l, right: r}
}

func un(text string, r *node) *node {
	return &node{text: text, op: lookupOp(text), right: r}
}

func TestBuildTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *node
	}{
		{"empty", "", nil},
		{"empty-parens", "(())", nil},
		{"num", "12.5", num("12.5", 12.5)},
		{"pi", "pi", num("pi", math.Pi)},
		{"e", "e", num("e", math.E)},
		{"add", "2+3", bin("+", num("2", 2), num("3", 3))},
		{"prec", "2+3*4", bin("+", num("2", 2), bin("*", num("3", 3), num("4", 4)))},
		{"pow", "2^3^2", bin("^", num("2", 2), bin("^", num("3", 3), num("2", 2)))},
		{"sub", "10-3-2", bin("-", bin("-", num("10", 10), num("3", 3)), num("2", 2))},
		{"neg", "-5", un("-", num("5", 5))},
		{"negneg", "3--2", bin("-", num("3", 3), un("-", num("2", 2)))},
		{"func", "ln(1)", un("ln", num("1", 1))},
		{"unknown", "foo(1)", un("foo", num("1", 1))},
		{"mod", "5%2", bin("%", num("5", 5), num("2", 2))},
		{"overflow", strings.Repeat("9", 400), num(strings.Repeat("9", 400), math.Inf(1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree, err := Build(c.src)
			if err != nil {
				t.Fatalf("%q failed to build: %v", c.src, err)
			}
			if d, e := tree.root.diff(c.want); d != nil || e != nil {
				t.Errorf("%q built wrong tree: want %v, got %v\n(differs at %v vs %v)", c.src, c.want, tree.root, e, d)
				t.Log(strings.Join(pretty.Diff(c.want, tree.root), "\n"))
			}
			if tree.Empty() != (c.want == nil) {
				t.Errorf("%q: Empty is %t", c.src, tree.Empty())
			}
		})
	}
}

func TestBuildPositions(t *testing.T) {
	tree, err := Build("2 + ln(3)")
	if err != nil {
		t.Fatal(err)
	}
	n := tree.root
	if n.pos != 3 || n.left.pos != 1 || n.right.pos != 5 || n.right.right.pos != 8 {
		t.Errorf("wrong positions: %# v", pretty.Formatter(n))
	}
}

func TestTreeString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"pi", "pi"},
		{"2+3*4", "(2 + (3 * 4))"},
		{"(2+3)*4", "((2 + 3) * 4)"},
		{"-5", "(- 5)"},
		{"3--2", "(3 - (- 2))"},
		{"ln(1)", "(ln 1)"},
		{"-(5*2)", "(- (5 * 2))"},
		{"sin(cos(0))^2", "((sin (cos 0)) ^ 2)"},
		{" 2 ^ 3 ^ 2 ", "(2 ^ (3 ^ 2))"},
	}
	for _, c := range cases {
		tree, err := Build(c.src)
		if err != nil {
			t.Errorf("%q failed to build: %v", c.src, err)
			continue
		}
		if got := tree.String(); got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestBuildStructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  StructuralError
	}{
		{"plus-prefix", "+5", StructuralError{Col: 1, Op: "+", Want: 2, Have: 1}},
		{"trailing-op", "2*", StructuralError{Col: 2, Op: "*", Want: 2, Have: 1}},
		{"lone-op", "*", StructuralError{Col: 1, Op: "*", Want: 2, Have: 0}},
		{"lone-neg", "-", StructuralError{Col: 1, Op: "-", Want: 1, Have: 0}},
		{"empty-call", "ln()", StructuralError{Col: 1, Op: "ln", Want: 1, Have: 0}},
		{"bare-name", "x", StructuralError{Col: 1, Op: "x", Want: 1, Have: 0}},
		{"two-terms", "2 3", StructuralError{Col: 3, Want: 1, Have: 2}},
		{"implicit-mul", "(2)(3)", StructuralError{Col: 5, Want: 1, Have: 2}},
		{"skipped-rune", "2$3", StructuralError{Col: 3, Want: 1, Have: 2}},
		{"three-terms", "1 2 3", StructuralError{Col: 3, Want: 1, Have: 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree, err := Build(c.src)
			if err == nil {
				t.Fatalf("%q gave no error, built %v", c.src, tree)
			}
			if tree != nil {
				t.Errorf("%q built %v with error", c.src, tree)
			}
			if !errors.Is(err, ErrStructure) {
				t.Errorf("%v is not ErrStructure", err)
			}
			serr, ok := err.(*StructuralError)
			if !ok {
				t.Fatalf("error was %#v, not StructuralError", err)
			}
			if *serr != c.err {
				t.Errorf("%q: want %#v, got %#v", c.src, c.err, *serr)
			}
		})
	}
}

func TestBuildNumberErrors(t *testing.T) {
	cases := []struct {
		src string
		err LexError
	}{
		{"1.2.3", LexError{Text: "1.2.3", Kind: "number", Col: 1}},
		{".", LexError{Text: ".", Kind: "number", Col: 1}},
		{"2+..", LexError{Text: "..", Kind: "number", Col: 3}},
	}
	for _, c := range cases {
		_, err := Build(c.src)
		lerr, ok := err.(*LexError)
		if !ok {
			t.Errorf("%q: error was %#v, not LexError", c.src, err)
			continue
		}
		if *lerr != c.err {
			t.Errorf("%q: want %#v, got %#v", c.src, c.err, *lerr)
		}
		if !strings.Contains(lerr.Error(), "number") {
			t.Errorf("%q doesn't mention number", lerr.Error())
		}
	}
}

func TestFromPostfixParens(t *testing.T) {
	_, err := fromPostfix([]Token{{Kind: TokenNumeric, Text: "1", Pos: 2}, {Kind: TokenLeftParen, Text: "(", Pos: 1}})
	if !errors.Is(err, ErrParenMismatch) {
		t.Errorf("postfix with paren gave %v", err)
	}
}
