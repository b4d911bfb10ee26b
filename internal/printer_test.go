package internal

import "testing"

func TestFormatToken(t *testing.T) {
	token := Token{Type: ARROW, Lexeme: "->", Pos: Position{Line: 3, Column: 12}}
	if s := FormatToken(token, "main.fg"); s != "['->':'Arrow'; <main.fg:3:12>]" {
		t.Errorf("Unexpected format %q", s)
	}

	tp := NewTokenPrinter()
	tp.Disable()
	if s := tp.Token(token, "main.fg"); s != FormatToken(token, "main.fg") {
		t.Errorf("Disabled printer should match FormatToken, found %q", s)
	}

	err := newIllegalSymbol('~', Position{Line: 1, Column: 7})
	if s := tp.Error("<stdin>", err); s != "<<stdin>:1:7> Error: Illegal Symbol: '~'" {
		t.Errorf("Unexpected error format %q", s)
	}
}

func TestTokenTypeString(t *testing.T) {
	cases := map[TokenType]string{
		ILLEGAL:       "Illegal",
		IDENTIFIER:    "Ident",
		FLOAT:         "Float",
		EQUAL:         "Assign",
		GREATER_EQUAL: "Gte",
		DOT:           "Period",
		EOF:           "Eof",
		EOF + 1:       "TokenType(28)",
		-1:            "TokenType(-1)",
	}
	for tokenType, expected := range cases {
		if tokenType.String() != expected {
			t.Errorf("Expected %q, found %q", expected, tokenType.String())
		}
	}
}
