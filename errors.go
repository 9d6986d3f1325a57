package exprtree

import (
	"errors"
	"strconv"
)

var (
	// ErrParenMismatch is matched by every *ParenError.
	ErrParenMismatch = errors.New("parenthesis mismatch")
	// ErrStructure is matched by every *StructuralError.
	ErrStructure = errors.New("malformed expression")
	// ErrUnknownOperator is matched by every *OperatorError.
	ErrUnknownOperator = errors.New("unknown operator")
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text of the invalid token.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" for
	// a numeric run that is not a valid number, or the empty string for a
	// rune rejected by the Strict option.
	Kind string
	// Col is the column of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParenError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type ParenError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if an open parenthesis was never closed and false if a
	// close parenthesis had no open parenthesis.
	Open bool
}

func (err *ParenError) Error() string {
	if err.Open {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *ParenError) Pos() int {
	return err.Col
}

func (err *ParenError) Is(target error) bool {
	return target == ErrParenMismatch
}

// StructuralError is an error indicating that the operators and operands of
// an expression do not fit together into a single tree. It implements
// InputError.
type StructuralError struct {
	// Col is the position of the operator that lacked operands, or of the
	// first operand left over.
	Col int
	// Op is the operator or function that lacked operands. It is empty if
	// the error is that operands were left over.
	Op string
	// Want is the number of operands needed.
	Want int
	// Have is the number of operands that were available.
	Have int
}

func (err *StructuralError) Error() string {
	if err.Op == "" {
		return errpos(err.Col, strconv.Itoa(err.Have)+" terms with no operator joining them")
	}
	return errpos(err.Col, strconv.Quote(err.Op)+" needs "+strconv.Itoa(err.Want)+" operands but has "+strconv.Itoa(err.Have))
}

func (err *StructuralError) Pos() int {
	return err.Col
}

func (err *StructuralError) Is(target error) bool {
	return target == ErrStructure
}

// OperatorError is an error indicating an operator or function that cannot
// be evaluated in the form in which it is applied. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator or function name.
	Operator string
	// Unary is whether the operator was applied to a single operand.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrUnknownOperator
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*StructuralError)(nil)
	_ InputError = (*OperatorError)(nil)
)
