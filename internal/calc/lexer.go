package calc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
	tokComma
	tokIllegal
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, size := utf8.DecodeRuneInString(l.s[l.i:])
		if !unicode.IsSpace(r) {
			break
		}
		l.i += size
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	single := func(kind tokenKind) token {
		l.i++
		return token{kind: kind, text: l.s[start:l.i], pos: start}
	}

	switch l.s[l.i] {
	case '+':
		return single(tokPlus)
	case '-':
		return single(tokMinus)
	case '*':
		if l.i+1 < len(l.s) && l.s[l.i+1] == '*' {
			l.i += 2
			return token{kind: tokPow, text: "**", pos: start}
		}
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '(':
		return single(tokLParen)
	case ')':
		return single(tokRParen)
	case ',':
		return single(tokComma)
	}

	r, size := utf8.DecodeRuneInString(l.s[l.i:])
	if isIdentStart(r) {
		l.i += size
		for l.i < len(l.s) {
			r, size := utf8.DecodeRuneInString(l.s[l.i:])
			if !isIdentContinue(r) {
				break
			}
			l.i += size
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if r == '.' || isDigit(r) {
		end, ok := scanNumber(l.s, l.i)
		if !ok {
			l.i++
			return token{kind: tokIllegal, text: ".", pos: start}
		}
		l.i = end
		txt := l.s[start:end]
		// Out-of-range literals parse as ±Inf; the parser rejects them.
		f, _ := strconv.ParseFloat(txt, 64)
		return token{kind: tokNumber, text: txt, num: f, pos: start}
	}

	l.i += size
	return token{kind: tokIllegal, text: string(r), pos: start}
}

// scanNumber returns the end of the float literal starting at i: digits with
// an optional fraction and an optional signed exponent. ok is false when the
// mantissa has no digits at all.
func scanNumber(s string, i int) (end int, ok bool) {
	digits := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return i, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentContinue admits subscript digits and ∞ so that ε₀, μ₀ and R∞ lex
// as single identifiers.
func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsNumber(r) || r == '∞'
}
