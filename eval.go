package exprtree

// Eval evaluates the tree. An empty tree evaluates to 0. Division by zero and
// functions outside their domains give infinities or NaN as usual for
// float64. If the tree contains an operator or function that cannot be
// evaluated, the error is an *OperatorError.
func (t *Tree) Eval() (float64, error) {
	if t.Empty() {
		return 0, nil
	}
	return t.root.eval()
}

func (n *node) eval() (float64, error) {
	if n.leaf {
		return n.val, nil
	}
	if n.right == nil {
		panic("exprtree: interior node with no right child: " + n.text)
	}
	d := n.op.def()
	switch d.arity {
	case arityUnary:
		if n.left != nil {
			return 0, &OperatorError{Col: n.pos, Operator: n.text, Unary: false}
		}
		return n.unary(d.unary)
	case arityBinary:
		if n.left == nil {
			return 0, &OperatorError{Col: n.pos, Operator: n.text, Unary: true}
		}
		return n.binary(d.binary)
	case arityBoth:
		if n.left == nil {
			return n.unary(d.unary)
		}
		return n.binary(d.binary)
	default:
		return 0, &OperatorError{Col: n.pos, Operator: n.text, Unary: n.left == nil}
	}
}

func (n *node) unary(f func(float64) float64) (float64, error) {
	x, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	return f(x), nil
}

func (n *node) binary(f func(float64, float64) float64) (float64, error) {
	x, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	y, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	return f(x, y), nil
}

// Eval is a shortcut to build an expression and evaluate it.
func Eval(expr string, opts ...BuildOption) (float64, error) {
	t, err := Build(expr, opts...)
	if err != nil {
		return 0, err
	}
	return t.Eval()
}
