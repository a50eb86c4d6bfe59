// Command blogctl is a command line client for the blog API.
package main

import (
	"context"
	"os"

	"github.com/kbukum/blogkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], cli.Options{}))
}
