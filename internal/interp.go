package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Result of processing one input
type Result int

const (
	Success Result = iota
	Failure
)

// Output summarizes the processing of one input
type Output struct {
	Result     Result
	ErrorCount int
	TokenCount int
}

// Interpreter feeds sources to a fresh lexer and reports tokens and errors
type Interpreter struct {
	printer IPrinter
	tokens  *TokenPrinter
	logger  logrus.FieldLogger
}

func NewInterpreter(p IPrinter, tp *TokenPrinter, logger logrus.FieldLogger) *Interpreter {
	return &Interpreter{
		printer: p,
		tokens:  tp,
		logger:  logger,
	}
}

// RunSourceWithPrinter interprets source with uncolored output on a fresh interpreter
func RunSourceWithPrinter(scriptName, source string, p IPrinter) bool {
	tp := NewTokenPrinter()
	tp.Disable()
	out := NewInterpreter(p, tp, logrus.StandardLogger()).Interpret(scriptName, source)
	return out.Result == Success
}

// Process scans source, reports the scan error if any and prints every token
// before EOF
func (i *Interpreter) Process(scriptName, source string) Output {
	out := Output{Result: Success}

	lexer := NewLexer()
	lexer.SetLogger(i.logger.WithField("script", scriptName))
	lexer.SetInput(source)
	result := lexer.Scan()

	out.TokenCount = result.Count
	i.printer.Println(fmt.Sprintf("Tokens Generated: %d", result.Count))

	if result.Err != nil {
		out.Result = Failure
		out.ErrorCount++
		i.printer.Fprintln(os.Stderr, i.tokens.Error(scriptName, result.Err))
	}

	for token := lexer.NextToken(); token.Type != EOF; token = lexer.NextToken() {
		if token.Type == ILLEGAL {
			// Drained without EOF, the queue is broken
			i.logger.WithField("script", scriptName).Error("token queue drained before EOF")
			break
		}
		i.printer.Println(i.tokens.Token(token, scriptName))
	}

	return out
}

// Interpret processes source and prints the error total on failure
func (i *Interpreter) Interpret(scriptName, source string) Output {
	out := i.Process(scriptName, source)
	if out.Result == Failure {
		plural := " "
		if out.ErrorCount > 1 {
			plural = "s "
		}
		i.printer.Println(fmt.Sprintf("%d error%sgenerated", out.ErrorCount, plural))
	}
	return out
}

// ExecuteScript interprets the file at path. An empty file does nothing.
func (i *Interpreter) ExecuteScript(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %s: %w", path, err)
	}

	if len(b) == 0 {
		i.logger.WithField("script", path).Debug("empty script")
		return nil
	}

	i.Interpret(path, string(b))
	return nil
}
