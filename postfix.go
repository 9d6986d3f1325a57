package exprtree

// ToPostfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Parentheses are resolved and dropped. A minus sign
// in prefix position is marked Unary. If the parentheses are unbalanced, the
// error is a *ParenError.
//
// Functions are pushed without comparing precedence. A function is output
// when the ) closing its argument is reached, or otherwise only once the
// input is exhausted, so "ln 2+1" is ln(2+1).
func ToPostfix(tokens []Token, opts ...BuildOption) ([]Token, error) {
	p := newbuildctx(opts)
	return topostfix(tokens, &p)
}

func topostfix(tokens []Token, p *buildctx) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	// prev is the kind of the previous token, or TokenInvalid at the start.
	prev := TokenInvalid
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumeric:
			out = append(out, tok)
		case TokenFunctional, TokenLeftParen:
			stack = append(stack, tok)
		case TokenOperator:
			if tok.Text == "-" && prefixes(prev) {
				// The operand hasn't been seen yet, so there is nothing to
				// displace.
				tok.Unary = true
				tok.Prec = unaryPrec
				stack = append(stack, tok)
				break
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator || !displaces(top, tok) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenRightParen:
			for {
				if len(stack) == 0 {
					return nil, &ParenError{Col: tok.Pos, Open: false}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenLeftParen {
					break
				}
				out = append(out, top)
			}
			// The parenthesized term is the argument to a preceding function.
			if len(stack) > 0 && stack[len(stack)-1].Kind == TokenFunctional {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		default:
			// Invalid and unclassified tokens carry no meaning.
			continue
		}
		prev = tok.Kind
		p.traceStacks(out, stack)
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenLeftParen || top.Kind == TokenRightParen {
			return nil, &ParenError{Col: top.Pos, Open: true}
		}
		out = append(out, top)
		p.traceStacks(out, stack)
	}
	return out, nil
}

// prefixes reports whether an operator following a token of kind prev is in
// prefix position.
func prefixes(prev TokenKind) bool {
	switch prev {
	case TokenInvalid, TokenOperator, TokenLeftParen, TokenFunctional:
		return true
	default:
		return false
	}
}
