package main

import (
	"fmt"
	"os"

	"github.com/temirov/scriptdash/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the scriptdash console dashboard.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
