package main

import (
	"fmt"
	"os"

	"github.com/oakwood-commons/fje/cmd"
	"github.com/oakwood-commons/fje/pkg/logger"
)

func main() {
	exitCode := 0
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fje: %v\n", err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
