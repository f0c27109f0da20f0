package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bjaus/colfmt/internal/cli"
	"github.com/bjaus/colfmt/internal/logger"
)

func main() {
	exitCode := 0
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "colfmt:", err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
