package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version of the forge toolchain
const Version = "v0.1.0"

const (
	replPrompt = ">> "
	replExit   = "exit"
	replScript = "<stdin>"
)

// StartREPL interprets in line by line until "exit" or end of input
func (i *Interpreter) StartREPL(in io.Reader) error {
	i.printer.Println(fmt.Sprintf("Forge %s on platform %s", Version, runtime.GOARCH))

	scanner := bufio.NewScanner(in)
	for {
		i.printer.Fprintf(os.Stdout, replPrompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == replExit {
			return nil
		}

		i.Interpret(replScript, line)
	}

	return scanner.Err()
}
