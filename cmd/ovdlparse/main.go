// Command ovdlparse loads a file, parses it under the requested script or
// CSV dialect, and reports diagnostics, following the exit policy: no file
// argument or a load failure exits 1, any parse error exits 2, and warnings
// alone exit 0.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}
