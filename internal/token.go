package internal

import "fmt"

// TokenType Holds a token
type TokenType int

const (
	// ILLEGAL is only seen on the default token returned by a drained lexer
	ILLEGAL TokenType = iota

	// Literals.
	// *variable*, string, int, float
	IDENTIFIER
	STRING
	NUMBER
	FLOAT

	// Keywords.
	// proc, return
	PROC
	RETURN

	// One or two character tokens.
	// =, ==, !=, <, <=, >, >=, +, -, ->, *, /
	EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	PLUS
	MINUS
	ARROW
	STAR
	SLASH

	// Punctuation.
	// ;, :, ., ',', {, }, (, )
	SEMICOLON
	COLON
	DOT
	COMMA
	LEFT_CURLY_BRACE
	RIGHT_CURLY_BRACE
	LEFT_PAREN
	RIGHT_PAREN

	EOF
)

var tokenNames = [...]string{
	ILLEGAL:           "Illegal",
	IDENTIFIER:        "Ident",
	STRING:            "String",
	NUMBER:            "Number",
	FLOAT:             "Float",
	PROC:              "Proc",
	RETURN:            "Return",
	EQUAL:             "Assign",
	EQUAL_EQUAL:       "Eq",
	BANG_EQUAL:        "Ne",
	LESS:              "Lt",
	LESS_EQUAL:        "Lte",
	GREATER:           "Gt",
	GREATER_EQUAL:     "Gte",
	PLUS:              "Add",
	MINUS:             "Sub",
	ARROW:             "Arrow",
	STAR:              "Mul",
	SLASH:             "Div",
	SEMICOLON:         "Semicolon",
	COLON:             "Colon",
	DOT:               "Period",
	COMMA:             "Comma",
	LEFT_CURLY_BRACE:  "LBrace",
	RIGHT_CURLY_BRACE: "RBrace",
	LEFT_PAREN:        "LParen",
	RIGHT_PAREN:       "RParen",
	EOF:               "Eof",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

var keywords = map[string]TokenType{
	"proc":   PROC,
	"return": RETURN,
}

// LookupIdent returns the keyword type for ident, or IDENTIFIER
func LookupIdent(ident string) TokenType {
	if tokenType, ok := keywords[ident]; ok {
		return tokenType
	}
	return IDENTIFIER
}

// Position is a 1-based line and column in the source
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexeme classified by the lexer
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    Position
}
