package main

import (
	"os"

	"github.com/jcamposd/apuntes-flow/internal/cli"
	"github.com/jcamposd/apuntes-flow/internal/output"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}
