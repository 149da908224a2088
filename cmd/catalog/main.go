// Command catalog browses the LLM model catalog from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = closeAll()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
