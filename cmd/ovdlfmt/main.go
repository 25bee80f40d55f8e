// Command ovdlfmt parses a script file and prints its canonical
// reconstruction, exercising the AST's reconstruction law.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}
