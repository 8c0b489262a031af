package execshell

import (
	"fmt"
	"strings"
)

const (
	startedMessageTemplateConstant          = "Running %s"
	successMessageTemplateConstant          = "Completed %s"
	failureMessageTemplateConstant          = "%s exited with code %d"
	failureDetailMessageTemplateConstant    = "%s exited with code %d: %s"
	executionFailureMessageTemplateConstant = "Unable to run %s: %v"
)

// CommandMessageFormatter renders human-readable command lifecycle messages.
type CommandMessageFormatter struct{}

// BuildStartedMessage describes a command about to execute.
func (CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return fmt.Sprintf(startedMessageTemplateConstant, command.DisplayLine())
}

// BuildSuccessMessage describes a command that completed successfully.
func (CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return fmt.Sprintf(successMessageTemplateConstant, command.DisplayLine())
}

// BuildFailureMessage describes a command that exited with a non-zero status.
func (CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	detail := strings.TrimSpace(result.StandardError)
	if len(detail) == 0 {
		return fmt.Sprintf(failureMessageTemplateConstant, command.DisplayLine(), result.ExitCode)
	}
	return fmt.Sprintf(failureDetailMessageTemplateConstant, command.DisplayLine(), result.ExitCode, detail)
}

// BuildExecutionFailureMessage describes a command the runner could not execute.
func (CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, cause error) string {
	return fmt.Sprintf(executionFailureMessageTemplateConstant, command.DisplayLine(), cause)
}
