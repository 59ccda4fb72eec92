package calc

import "testing"

func TestLexer(t *testing.T) {
	l := lexer{s: "ε₀ * 2.5e-3**(R∞, .5) / $"}
	want := []struct {
		kind tokenKind
		text string
	}{
		{tokIdent, "ε₀"},
		{tokStar, "*"},
		{tokNumber, "2.5e-3"},
		{tokPow, "**"},
		{tokLParen, "("},
		{tokIdent, "R∞"},
		{tokComma, ","},
		{tokNumber, ".5"},
		{tokRParen, ")"},
		{tokSlash, "/"},
		{tokIllegal, "$"},
		{tokEOF, ""},
	}

	for i, w := range want {
		tok := l.next()
		if tok.kind != w.kind || tok.text != w.text {
			t.Fatalf("token %d: got (%d, %q), want (%d, %q)", i, tok.kind, tok.text, w.kind, w.text)
		}
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in     string
		end    int
		wantOK bool
	}{
		{"123", 3, true},
		{"1.5", 3, true},
		{"1.", 2, true},
		{".25", 3, true},
		{"3e8", 3, true},
		{"3E+8", 4, true},
		{"6.63e-34x", 8, true},
		{"2e", 1, true},
		{"2e+", 1, true},
		{".", 1, false},
		{".e5", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			end, ok := scanNumber(tt.in, 0)
			if end != tt.end || ok != tt.wantOK {
				t.Errorf("scanNumber(%q) = (%d, %v), want (%d, %v)", tt.in, end, ok, tt.end, tt.wantOK)
			}
		})
	}
}

func TestLexerOutOfRange(t *testing.T) {
	l := lexer{s: "1e999"}
	tok := l.next()
	if tok.kind != tokNumber {
		t.Fatalf("got kind %d, want number", tok.kind)
	}
	if tok.num <= 1e308 {
		t.Errorf("got %v, want +Inf", tok.num)
	}
}
