package main

import (
	"fmt"
	"strings"
	"time"

	"forge/internal"
)

var source string = `
proc add(a: int, b: int) -> int {
    return a + b;
}

proc main() {
    total = add(1, 2.5);
    if total >= 3 { greeting = "hello"; }
}
`

func main() {
	input := strings.Repeat(source, 10000)

	start := time.Now()
	lexer := internal.NewLexer()
	lexer.SetInput(input)
	result := lexer.Scan()
	elapsed := time.Since(start)

	fmt.Println("Tokens generated:", result.Count)
	fmt.Println("Time elapsed is:", elapsed)
}
