package calc

import "math"

// maxDepth bounds parenthesis and unary nesting.
const maxDepth = 200

type parser struct {
	l     lexer
	cur   token
	depth int
}

// parse compiles a rewritten expression into a syntax tree. Identifiers are
// not resolved here; resolution happens against the namespace at eval time.
func parse(s string) (node, error) {
	p := &parser{l: lexer{s: s}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, newError(SyntaxError, p.cur.pos, "unexpected end of input")
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) unexpected() *Error {
	switch p.cur.kind {
	case tokEOF:
		return newError(SyntaxError, p.cur.pos, "unexpected end of input")
	case tokIllegal:
		return newError(SyntaxError, p.cur.pos, "invalid character %q", p.cur.text)
	}
	return newError(SyntaxError, p.cur.pos, "unexpected %q", p.cur.text)
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return newError(SyntaxError, p.cur.pos, "expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parseUnary handles prefix signs. A sign binds looser than "**", so -2**2
// is -(2**2).
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

// parsePower is right associative and accepts a signed exponent: 2**-1.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPow {
		return base, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return nodeBinary{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		tok := p.cur
		if math.IsInf(tok.num, 0) {
			return nil, newError(DomainError, tok.pos, "number %s out of range", tok.text)
		}
		p.next()
		return nodeNumber{v: tok.num}, nil
	case tokIdent:
		tok := p.cur
		p.next()
		if p.cur.kind != tokLParen {
			return nodeIdent{name: tok.text, pos: tok.pos}, nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return nodeCall{name: tok.text, args: args, pos: tok.pos}, nil
	case tokLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			if p.cur.kind == tokEOF {
				return nil, newError(SyntaxError, p.cur.pos, "expected ')'")
			}
			return nil, p.unexpected()
		}
		p.next()
		return ex, nil
	}
	return nil, p.unexpected()
}

func (p *parser) parseArgs() ([]node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.next() // '('
	var args []node
	if p.cur.kind == tokRParen {
		p.next()
		return args, nil
	}
	for {
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, ex)
		if p.cur.kind == tokComma {
			p.next()
			continue
		}
		break
	}
	if p.cur.kind != tokRParen {
		if p.cur.kind == tokEOF {
			return nil, newError(SyntaxError, p.cur.pos, "expected ')'")
		}
		return nil, p.unexpected()
	}
	p.next()
	return args, nil
}
