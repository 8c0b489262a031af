package reciperunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nbnursery/chore/internal/execshell"
	"github.com/nbnursery/chore/internal/recipes"
)

const sequenceExecutorMissingMessageConstant = "recipe runner sequence executor not configured"

// ErrSequenceExecutorNotConfigured indicates the execution dependency was missing.
var ErrSequenceExecutorNotConfigured = errors.New(sequenceExecutorMissingMessageConstant)

// SequenceExecutor runs rendered command lines in order, halting at the first failure.
type SequenceExecutor interface {
	ExecuteSequence(executionContext context.Context, lines []execshell.CommandLine, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Dependencies describes the collaborators required to execute recipe plans.
type Dependencies struct {
	Logger           *zap.Logger
	SequenceExecutor SequenceExecutor
	Output           io.Writer
	Errors           io.Writer
	DisableSummary   bool
}

// RuntimeOptions adjusts a single plan execution.
type RuntimeOptions struct {
	WorkingDirectory string
	DryRun           bool
}

// Outcome captures the observable result of executing a plan.
type Outcome struct {
	RecipeName   string
	CommandCount int
	ExitCode     int
	DryRun       bool
	StartTime    time.Time
	EndTime      time.Time
}

// Duration reports the wall-clock time spent executing the plan.
func (outcome Outcome) Duration() time.Duration {
	return outcome.EndTime.Sub(outcome.StartTime)
}

// Executor runs rendered recipe plans.
type Executor interface {
	Run(executionContext context.Context, recipeName string, plan recipes.Plan, options RuntimeOptions) (Outcome, error)
}

// Factory constructs an Executor given runner dependencies.
type Factory func(Dependencies) Executor

// Resolve returns either the provided factory result or the default plan runner.
func Resolve(factory Factory, dependencies Dependencies) Executor {
	var base Executor
	if factory != nil {
		base = factory(dependencies)
	}
	if base == nil {
		base = planRunner{dependencies: dependencies}
	}
	return summaryExecutor{
		delegate:     base,
		dependencies: dependencies,
	}
}

type planRunner struct {
	dependencies Dependencies
}

func (runner planRunner) Run(executionContext context.Context, recipeName string, plan recipes.Plan, options RuntimeOptions) (Outcome, error) {
	commandLines := plan.CommandLines()
	outcome := Outcome{
		RecipeName:   recipeName,
		CommandCount: len(commandLines),
		DryRun:       options.DryRun,
		StartTime:    time.Now(),
	}

	if options.DryRun {
		writer := runner.outputWriter()
		for _, commandLine := range commandLines {
			fmt.Fprintln(writer, commandLine)
		}
		outcome.EndTime = time.Now()
		return outcome, nil
	}

	if runner.dependencies.SequenceExecutor == nil {
		outcome.EndTime = time.Now()
		return outcome, ErrSequenceExecutorNotConfigured
	}

	executableLines := make([]execshell.CommandLine, 0, len(commandLines))
	for _, commandLine := range commandLines {
		executableLines = append(executableLines, execshell.CommandLine(commandLine))
	}

	executionResult, executionError := runner.dependencies.SequenceExecutor.ExecuteSequence(
		executionContext,
		executableLines,
		execshell.CommandDetails{WorkingDirectory: options.WorkingDirectory},
	)
	outcome.EndTime = time.Now()
	outcome.ExitCode = executionResult.ExitCode

	if executionError != nil {
		var failedError execshell.CommandFailedError
		if errors.As(executionError, &failedError) {
			outcome.ExitCode = failedError.ExitCode()
		}
		return outcome, executionError
	}

	return outcome, nil
}

func (runner planRunner) outputWriter() io.Writer {
	if runner.dependencies.Output != nil {
		return runner.dependencies.Output
	}
	return os.Stdout
}

type summaryExecutor struct {
	delegate     Executor
	dependencies Dependencies
}

func (executor summaryExecutor) Run(executionContext context.Context, recipeName string, plan recipes.Plan, options RuntimeOptions) (Outcome, error) {
	outcome, runError := executor.delegate.Run(executionContext, recipeName, plan, options)
	executor.printSummary(outcome)
	return outcome, runError
}

func (executor summaryExecutor) printSummary(outcome Outcome) {
	if executor.dependencies.DisableSummary {
		return
	}
	writer := executor.summaryWriter()
	if writer == nil {
		return
	}

	summary := RenderSummaryLine(outcome)
	if len(strings.TrimSpace(summary)) == 0 {
		return
	}
	fmt.Fprintln(writer, summary)
}

func (executor summaryExecutor) summaryWriter() io.Writer {
	if executor.dependencies.Errors != nil {
		return executor.dependencies.Errors
	}
	if executor.dependencies.Output != nil {
		return executor.dependencies.Output
	}
	return nil
}
