// Command langs inspects the predefined language definitions, installs them
// into the language store and tokenizes text with a language's parser.
//
// Commands that only read definitions work without a database; --installed
// variants and install/delete need database.dsn (or DATABASE_DSN).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "langs: %v\n", err)
		os.Exit(1)
	}
}

// run executes one langs invocation and releases what it opened.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root, c := newRootCmd()
	defer c.close()

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}
