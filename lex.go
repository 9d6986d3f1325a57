package exprtree

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Kind is the class of the token.
	Kind TokenKind
	// Text is the literal text the token was scanned from.
	Text string
	// Prec is the precedence of an operator token. It is 0 for every other
	// kind of token.
	Prec int
	// Pos is the column of the first rune of the token, counting from 1.
	Pos int
	// Unary marks a prefix operator. Only ToPostfix sets it.
	Unary bool
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the class of a token.
type TokenKind int8

const (
	// TokenInvalid is a rune outside the grammar. The lexer never emits it.
	TokenInvalid TokenKind = iota
	// TokenNumeric is a number literal or a named constant.
	TokenNumeric
	// TokenAlphabetical is a run of letters before it is classified. The
	// lexer never emits it.
	TokenAlphabetical
	// TokenFunctional is the name of a prefix function.
	TokenFunctional
	// TokenOperator is one of the runes in Operators.
	TokenOperator
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
)

var kindnames = [...]string{
	TokenInvalid:      "Invalid",
	TokenNumeric:      "Numeric",
	TokenAlphabetical: "Alphabetical",
	TokenFunctional:   "Functional",
	TokenOperator:     "Operator",
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Operators contains the runes which are scanned as operators. Not all of
// them can be evaluated.
const Operators = "+-*/%^"

// classify gives the token kind a single rune begins.
func classify(r rune) TokenKind {
	switch {
	case '0' <= r && r <= '9', r == '.':
		return TokenNumeric
	case 'a' <= r && r <= 'z':
		return TokenAlphabetical
	case strings.ContainsRune(Operators, r):
		return TokenOperator
	case r == '(':
		return TokenLeftParen
	case r == ')':
		return TokenRightParen
	default:
		return TokenInvalid
	}
}

type lexer struct {
	src    io.RuneScanner
	buf    strings.Builder
	col    int
	strict bool
}

func lex(src io.RuneScanner, strict bool) *lexer {
	return &lexer{src: src, strict: strict}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch kind := classify(r); kind {
		case TokenNumeric:
			l.unreadRune()
			if err := l.scan(TokenNumeric); err != nil {
				return tok, err
			}
			tok.Kind = TokenNumeric
			tok.Text = l.buf.String()
			return tok, nil
		case TokenAlphabetical:
			l.unreadRune()
			if err := l.scan(TokenAlphabetical); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			// Constants are operands; every other name is a function.
			if _, ok := constants[tok.Text]; ok {
				tok.Kind = TokenNumeric
			} else {
				tok.Kind = TokenFunctional
			}
			return tok, nil
		case TokenOperator:
			tok.Kind = TokenOperator
			tok.Text = string(r)
			tok.Prec = precedence(tok.Text)
			return tok, nil
		case TokenLeftParen, TokenRightParen:
			tok.Kind = kind
			tok.Text = string(r)
			return tok, nil
		default:
			if l.strict && !unicode.IsSpace(r) {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return tok, l.error(tok.Pos, "")
			}
		}
	}
}

// scan reads a maximal run of runes of the given kind into the buffer.
func (l *lexer) scan(kind TokenKind) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides the kind before calling
				// scan, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if classify(r) != kind {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(col int, kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  col,
	}
}

// Tokenize scans an expression into tokens. Runes outside the grammar are
// skipped unless the Strict option is given.
func Tokenize(expr string, opts ...BuildOption) ([]Token, error) {
	p := newbuildctx(opts)
	return tokenize(strings.NewReader(expr), &p)
}

func tokenize(src io.RuneScanner, p *buildctx) ([]Token, error) {
	scan := lex(src, p.strict)
	var tokens []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
