package main

import (
	"os"

	"github.com/lbsa71/nocomments/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
