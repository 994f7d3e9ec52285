package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/spark/cmd/spark"
	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/style"
)

func main() {
	rootCmd := spark.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		for _, line := range errors.DetailLines(err) {
			fmt.Fprintln(os.Stderr, style.MutedStyle.Render("  "+line))
		}
		os.Exit(1)
	}
}
