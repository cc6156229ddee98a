// Nocomments-vet runs the comment audit as a standalone analysis driver,
// usable directly or via "go vet -vettool".
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/lbsa71/nocomments/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
