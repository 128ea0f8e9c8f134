package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/tecl/cli"
	"github.com/ardnew/tecl/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Debug(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
