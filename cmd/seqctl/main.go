package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/internal/seqctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := seqctl.Execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seqctl: %v\n", err)
	}
	os.Exit(errors.ExitCode(err))
}
