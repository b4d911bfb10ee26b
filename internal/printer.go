package internal

import (
	"fmt"

	"github.com/labstack/gommon/color"
)

// FormatToken renders a token as ['lexeme':'Kind'; <script:line:column>]
func FormatToken(token Token, scriptName string) string {
	return formatToken(token.Lexeme, token.Type.String(), scriptName, token.Pos)
}

func formatToken(lexeme, kind, scriptName string, pos Position) string {
	return fmt.Sprintf("['%s':'%s'; <%s:%d:%d>]", lexeme, kind, scriptName, pos.Line, pos.Column)
}

// TokenPrinter colorizes tokens and error headers for a terminal
type TokenPrinter struct {
	color *color.Color
}

func NewTokenPrinter() *TokenPrinter {
	return &TokenPrinter{color: color.New()}
}

// Disable turns colors off, output is then the same as FormatToken
func (tp *TokenPrinter) Disable() {
	tp.color.Disable()
}

func (tp *TokenPrinter) Token(token Token, scriptName string) string {
	return formatToken(token.Lexeme, tp.kind(token.Type), scriptName, token.Pos)
}

func (tp *TokenPrinter) kind(t TokenType) string {
	name := t.String()
	switch {
	case t == PROC || t == RETURN:
		return tp.color.Magenta(name, color.B)
	case t == STRING:
		return tp.color.Green(name)
	case t == NUMBER || t == FLOAT:
		return tp.color.Yellow(name)
	case t == IDENTIFIER:
		return tp.color.Cyan(name)
	}
	return tp.color.Blue(name)
}

// Error renders a scan error located in scriptName
func (tp *TokenPrinter) Error(scriptName string, err *ScanError) string {
	return fmt.Sprintf(
		"<%s:%d:%d> %s: %s",
		scriptName,
		err.Pos.Line,
		err.Pos.Column,
		tp.color.Red("Error", color.B),
		err.Message,
	)
}
