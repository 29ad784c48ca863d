// Command librarydemo runs the canonical lending scenario against an in-memory library:
// it seeds books and users, lends one book, lets simulated days pass, returns the book,
// and prints the late fee.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
