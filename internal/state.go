package internal

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a scan error
type ErrorKind int

const (
	None ErrorKind = iota
	IllegalSymbol
)

func (k ErrorKind) String() string {
	switch k {
	case None:
		return "None"
	case IllegalSymbol:
		return "IllegalSymbol"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Lexer errors
var errIllegalSymbol = errors.New("Illegal Symbol")

// ScanError is an error found while scanning, with the position of the offending symbol
type ScanError struct {
	Kind    ErrorKind
	Message string
	Pos     Position
}

func newIllegalSymbol(symbol rune, pos Position) *ScanError {
	return &ScanError{
		Kind:    IllegalSymbol,
		Message: fmt.Sprintf("%s: '%c'", errIllegalSymbol, symbol),
		Pos:     pos,
	}
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func (e *ScanError) Unwrap() error {
	if e.Kind == IllegalSymbol {
		return errIllegalSymbol
	}
	return nil
}

// IsIllegalSymbol reports whether err is an illegal symbol scan error
func IsIllegalSymbol(err error) bool {
	return errors.Is(err, errIllegalSymbol)
}

// ScanResult summarizes a call to Scan.
// Err holds only the last error found; Illegal counts every skipped symbol.
type ScanResult struct {
	Err     *ScanError
	Count   int
	Illegal int
}

// Kind returns the kind of the stored error, None when the scan was clean
func (r ScanResult) Kind() ErrorKind {
	if r.Err == nil {
		return None
	}
	return r.Err.Kind
}
