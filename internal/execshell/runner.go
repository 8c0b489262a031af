package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
)

const processStartErrorTemplateConstant = "unable to start %s: %w"

// OSCommandRunner executes commands against the host operating system.
type OSCommandRunner struct {
	outputWriter io.Writer
	errorWriter  io.Writer
}

// NewOSCommandRunner constructs a runner that captures output without streaming.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// NewStreamingOSCommandRunner constructs a runner that streams output while capturing it.
func NewStreamingOSCommandRunner(outputWriter io.Writer, errorWriter io.Writer) *OSCommandRunner {
	return &OSCommandRunner{outputWriter: outputWriter, errorWriter: errorWriter}
}

// Run executes the command, streaming standard output and error when writers are configured.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executableCommand := exec.CommandContext(executionContext, string(command.Name), command.Details.Arguments...)
	executableCommand.Dir = command.Details.WorkingDirectory
	executableCommand.Stdin = os.Stdin
	executableCommand.Env = buildProcessEnvironment(command.Details.EnvironmentVariables)

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executableCommand.Stdout = runner.resolveWriter(&standardOutputBuffer, runner.outputWriter)
	executableCommand.Stderr = runner.resolveWriter(&standardErrorBuffer, runner.errorWriter)

	runError := executableCommand.Run()
	executionResult := ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
	}

	if runError != nil {
		var exitError *exec.ExitError
		if errors.As(runError, &exitError) {
			executionResult.ExitCode = exitError.ExitCode()
			return executionResult, nil
		}
		if contextError := executionContext.Err(); contextError != nil {
			return executionResult, contextError
		}
		return executionResult, fmt.Errorf(processStartErrorTemplateConstant, command.Name, runError)
	}

	executionResult.ExitCode = 0
	return executionResult, nil
}

func (runner *OSCommandRunner) resolveWriter(captureBuffer *bytes.Buffer, streamWriter io.Writer) io.Writer {
	if streamWriter == nil {
		return captureBuffer
	}
	return io.MultiWriter(streamWriter, captureBuffer)
}

func buildProcessEnvironment(environmentVariables map[string]string) []string {
	if len(environmentVariables) == 0 {
		return nil
	}

	variableNames := make([]string, 0, len(environmentVariables))
	for variableName := range environmentVariables {
		variableNames = append(variableNames, variableName)
	}
	sort.Strings(variableNames)

	processEnvironment := os.Environ()
	for _, variableName := range variableNames {
		processEnvironment = append(processEnvironment, fmt.Sprintf("%s=%s", variableName, environmentVariables[variableName]))
	}
	return processEnvironment
}
