// Command abstractfactory prints the Abstract Factory walkthrough.
//
// It takes no arguments, flags or environment variables; the transcript on
// stdout is deterministic.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sghaida/creational/abstractfactory"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

// run executes the walkthrough and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(stdout, stderr io.Writer) int {
	if err := abstractfactory.Run(stdout); err != nil {
		_, _ = fmt.Fprintln(stderr, "abstractfactory:", err)
		return 1
	}
	return 0
}
