package internal

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Lexer scans a whole source buffer into a queue of tokens.
//
// A Lexer is meant to be used once: SetInput, Scan, then NextToken until EOF.
// SetInput does not rewind the cursor, so reusing a Lexer for a second input
// requires an explicit call to Reset.
type Lexer struct {
	source  string
	start   int
	current int

	line      int
	lineStart int

	// line and lineStart as they were when the current token started
	startLine      int
	startLineStart int

	tokens  []Token
	emitted int

	logger logrus.FieldLogger
}

func NewLexer() *Lexer {
	return &Lexer{
		line:   1,
		logger: logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used to trace scan errors
func (l *Lexer) SetLogger(logger logrus.FieldLogger) {
	l.logger = logger
}

// SetInput replaces the source buffer. The scan position is left untouched.
func (l *Lexer) SetInput(source string) {
	l.source = source
}

// Reset rewinds the scan position and drops every queued token
func (l *Lexer) Reset() {
	l.start = 0
	l.current = 0
	l.line = 1
	l.lineStart = 0
	l.startLine = 0
	l.startLineStart = 0
	l.tokens = nil
	l.emitted = 0
}

// Scan tokenizes the whole input. Illegal symbols are skipped and scanning
// goes on; only the last one is kept in the result. An EOF token always
// ends the queue.
func (l *Lexer) Scan() ScanResult {
	var result ScanResult
	emitted := l.emitted

	for !l.isAtEnd() {
		l.markStart()
		if err := l.scanToken(); err != nil {
			result.Err = err
			result.Illegal++
		}
	}

	l.markStart()
	l.emit(EOF)

	result.Count = l.emitted - emitted

	l.logger.WithFields(logrus.Fields{
		"tokens":  result.Count,
		"illegal": result.Illegal,
	}).Debug("scan finished")

	return result
}

// NextToken pops the oldest queued token. Once the queue is drained it
// returns the zero Token; EOF is the signal to stop.
func (l *Lexer) NextToken() Token {
	if len(l.tokens) == 0 {
		return Token{}
	}
	token := l.tokens[0]
	l.tokens = l.tokens[1:]
	return token
}

func (l *Lexer) scanToken() *ScanError {
	c := l.advance()
	switch c {
	case '{':
		l.emit(LEFT_CURLY_BRACE)
	case '}':
		l.emit(RIGHT_CURLY_BRACE)
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case ',':
		l.emit(COMMA)
	case '.':
		l.emit(DOT)
	case ';':
		l.emit(SEMICOLON)
	case ':':
		l.emit(COLON)
	case '+':
		l.emit(PLUS)
	case '*':
		l.emit(STAR)
	case '/':
		l.emit(SLASH)
	case '-':
		if l.match('>') {
			l.emit(ARROW)
		} else {
			l.emit(MINUS)
		}
	case '!':
		// A lone '!' is consumed without producing a token
		if l.match('=') {
			l.emit(BANG_EQUAL)
		}
	case '=':
		if l.match('=') {
			l.emit(EQUAL_EQUAL)
		} else {
			l.emit(EQUAL)
		}
	case '<':
		if l.match('=') {
			l.emit(LESS_EQUAL)
		} else {
			l.emit(LESS)
		}
	case '>':
		if l.match('=') {
			l.emit(GREATER_EQUAL)
		} else {
			l.emit(GREATER)
		}

	// Ignore whitespace
	case ' ', '\r', '\t', '\v', '\f':

	case '\n':
		l.newline()

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			return l.illegal()
		}
	}
	return nil
}

// illegal skips one rune starting at l.start and reports it
func (l *Lexer) illegal() *ScanError {
	symbol, size := utf8.DecodeRuneInString(l.source[l.start:])
	l.current = l.start + size

	err := newIllegalSymbol(symbol, l.position(l.start))
	l.logger.WithFields(logrus.Fields{
		"symbol": string(symbol),
		"line":   err.Pos.Line,
		"column": err.Pos.Column,
	}).Debug("skipping illegal symbol")
	return err
}

func (l *Lexer) string() {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.advance() == '\n' {
			l.newline()
		}
	}

	// Consume ending ", an unterminated string runs to the end of input
	l.match('"')

	l.emit(STRING)
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.match('.') {
		for isDigit(l.peek()) {
			l.advance()
		}
		l.emit(FLOAT)
		return
	}

	l.emit(NUMBER)
}

// identifier scans letters and underscores only, digits end the identifier
func (l *Lexer) identifier() {
	for isAlpha(l.peek()) {
		l.advance()
	}
	l.emit(IDENTIFIER)
}

func (l *Lexer) markStart() {
	l.start = l.current
	l.startLine = l.line
	l.startLineStart = l.lineStart
}

func (l *Lexer) newline() {
	l.line++
	l.lineStart = l.current
}

func (l *Lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) emit(tokenType TokenType) {
	l.makeToken(l.start, tokenType)
}

// makeToken queues the token spanning start to the cursor. Identifiers are
// resolved against the keyword table here.
func (l *Lexer) makeToken(start int, tokenType TokenType) Token {
	lexeme := l.source[start:l.current]
	if tokenType == IDENTIFIER {
		tokenType = LookupIdent(lexeme)
	}

	token := Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    l.position(start),
	}
	l.tokens = append(l.tokens, token)
	l.emitted++
	return token
}

func (l *Lexer) position(start int) Position {
	return Position{
		Line:   l.startLine,
		Column: start - l.startLineStart + 1,
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
