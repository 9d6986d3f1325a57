package exprtree

import "math"

// arity is the form in which an operator may be applied.
type arity int8

const (
	arityNone   arity = iota
	arityUnary        // right operand only
	arityBinary       // left and right operands
	arityBoth         // unary without a left operand, binary with one
)

type opKind int8

const (
	opNone opKind = iota

	opAdd
	opSub // also negation
	opMul
	opDiv
	opPow

	opNeg
	opSgn
	opLn
	opLg
	opLog
	opSin
	opCos
	opTan
	opCsc
	opSec
	opCot
)

// opdef describes how to evaluate an operator.
type opdef struct {
	name   string
	arity  arity
	unary  func(x float64) float64
	binary func(x, y float64) float64
}

var opdefs = [...]opdef{
	opNone: {},

	opAdd: {name: "+", arity: arityBinary, binary: func(x, y float64) float64 { return x + y }},
	opSub: {name: "-", arity: arityBoth, unary: neg, binary: func(x, y float64) float64 { return x - y }},
	opMul: {name: "*", arity: arityBinary, binary: func(x, y float64) float64 { return x * y }},
	opDiv: {name: "/", arity: arityBinary, binary: func(x, y float64) float64 { return x / y }},
	opPow: {name: "^", arity: arityBinary, binary: math.Pow},

	opNeg: {name: "neg", arity: arityUnary, unary: neg},
	opSgn: {name: "sgn", arity: arityUnary, unary: sgn},
	opLn:  {name: "ln", arity: arityUnary, unary: math.Log},
	opLg:  {name: "lg", arity: arityUnary, unary: math.Log2},
	opLog: {name: "log", arity: arityUnary, unary: math.Log10},
	opSin: {name: "sin", arity: arityUnary, unary: math.Sin},
	opCos: {name: "cos", arity: arityUnary, unary: math.Cos},
	opTan: {name: "tan", arity: arityUnary, unary: math.Tan},
	opCsc: {name: "csc", arity: arityUnary, unary: func(x float64) float64 { return 1 / math.Sin(x) }},
	opSec: {name: "sec", arity: arityUnary, unary: func(x float64) float64 { return 1 / math.Cos(x) }},
	opCot: {name: "cot", arity: arityUnary, unary: func(x float64) float64 { return 1 / math.Tan(x) }},
}

// opnames maps operator and function names to their kinds.
var opnames = func() map[string]opKind {
	m := make(map[string]opKind, len(opdefs))
	for k, d := range opdefs {
		if d.name != "" {
			m[d.name] = opKind(k)
		}
	}
	return m
}()

// lookupOp gets the operator kind for a name. Unknown names give opNone.
func lookupOp(name string) opKind {
	return opnames[name]
}

func (k opKind) def() *opdef {
	return &opdefs[k]
}

func neg(x float64) float64 {
	return -x
}

// sgn is the sign function. Zeros and NaN are returned unchanged.
func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// constants are the names which are scanned as numbers.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// unaryPrec is the precedence of prefix negation. It binds tighter than
// multiplication but not exponentiation, so -2^2 is -(2^2).
const unaryPrec = 4

// precedence gives the precedence of an operator. Higher is more binding.
func precedence(op string) int {
	switch op {
	case "^":
		return 4
	case "*", "/":
		return 3
	case "+", "-":
		return 2
	default:
		return 1
	}
}

// rightAssoc reports whether an operator groups right to left.
func rightAssoc(tok Token) bool {
	return tok.Unary || tok.Text == "^"
}

// displaces reports whether the operator top, already on the stack, must be
// output before cur is pushed.
func displaces(top, cur Token) bool {
	return !rightAssoc(top) && top.Prec >= cur.Prec || top.Prec > cur.Prec
}
