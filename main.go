package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shandysiswandi/parserconfig/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	application := app.New(os.Stdout, os.Stderr) // Build the command tree
	code := application.Run(ctx, os.Args[1:])    // Execute the requested command
	stop()

	os.Exit(code)
}
