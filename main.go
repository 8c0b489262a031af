package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nbnursery/chore/cmd/cli"
	"github.com/nbnursery/chore/internal/execshell"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the chore command-line application, propagating recipe exit codes.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)

	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) && commandFailure.ExitCode() != 0 {
		os.Exit(commandFailure.ExitCode())
	}
	os.Exit(1)
}
