package execshell_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nbnursery/chore/internal/execshell"
)

const (
	testExecutionSuccessCaseNameConstant     = "success"
	testExecutionFailureCaseNameConstant     = "failure_exit_code"
	testExecutionRunnerErrorCaseNameConstant = "runner_error"
	testLoggerInitializationCaseNameConstant = "logger_validation"
	testRunnerInitializationCaseNameConstant = "runner_validation"
	testSuccessfulInitializationCaseName     = "successful_initialization"
	testStandardErrorOutputConstant          = "failure"
	testRunnerFailureMessageConstant         = "runner failure"
	testShellLineConstant                    = "echo hello"
	testSecondShellLineConstant              = "echo second"
	testWorkingDirectoryConstant             = "."
	executorSubtestNameTemplateConstant      = "%d_%s"
)

type recordingCommandRunner struct {
	executionResults []execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.ShellCommand
}

func (runner *recordingCommandRunner) Run(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	runner.recordedCommands = append(runner.recordedCommands, command)
	if runner.executionError != nil {
		return execshell.ExecutionResult{}, runner.executionError
	}
	resultIndex := len(runner.recordedCommands) - 1
	if resultIndex >= len(runner.executionResults) {
		resultIndex = len(runner.executionResults) - 1
	}
	if resultIndex < 0 {
		return execshell.ExecutionResult{}, nil
	}
	return runner.executionResults[resultIndex], nil
}

func TestShellExecutorInitializationValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logger        *zap.Logger
		runner        execshell.CommandRunner
		expectError   error
		expectSuccess bool
	}{
		{
			name:        testLoggerInitializationCaseNameConstant,
			logger:      nil,
			runner:      &recordingCommandRunner{},
			expectError: execshell.ErrLoggerNotConfigured,
		},
		{
			name:        testRunnerInitializationCaseNameConstant,
			logger:      zap.NewNop(),
			runner:      nil,
			expectError: execshell.ErrCommandRunnerNotConfigured,
		},
		{
			name:          testSuccessfulInitializationCaseName,
			logger:        zap.NewNop(),
			runner:        &recordingCommandRunner{},
			expectSuccess: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, creationError := execshell.NewShellExecutor(testCase.logger, testCase.runner, false)
			if testCase.expectSuccess {
				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, executor)
			} else {
				require.Error(testInstance, creationError)
				require.ErrorIs(testInstance, creationError, testCase.expectError)
			}
		})
	}
}

func TestShellExecutorExecuteBehavior(testInstance *testing.T) {
	testCases := []struct {
		name             string
		runnerResult     execshell.ExecutionResult
		runnerError      error
		expectFailed     bool
		expectExecution  bool
		expectedExitCode int
		expectedLevels   []zapcore.Level
	}{
		{
			name:           testExecutionSuccessCaseNameConstant,
			runnerResult:   execshell.ExecutionResult{StandardOutput: "ok", ExitCode: 0},
			expectedLevels: []zapcore.Level{zap.InfoLevel, zap.InfoLevel},
		},
		{
			name:             testExecutionFailureCaseNameConstant,
			runnerResult:     execshell.ExecutionResult{StandardError: testStandardErrorOutputConstant, ExitCode: 3},
			expectFailed:     true,
			expectedExitCode: 3,
			expectedLevels:   []zapcore.Level{zap.InfoLevel, zap.WarnLevel},
		},
		{
			name:            testExecutionRunnerErrorCaseNameConstant,
			runnerError:     errors.New(testRunnerFailureMessageConstant),
			expectExecution: true,
			expectedLevels:  []zapcore.Level{zap.InfoLevel, zap.ErrorLevel},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(executorSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			observedCore, observedLogs := observer.New(zap.DebugLevel)
			commandRunner := &recordingCommandRunner{
				executionResults: []execshell.ExecutionResult{testCase.runnerResult},
				executionError:   testCase.runnerError,
			}

			executor, creationError := execshell.NewShellExecutor(zap.New(observedCore), commandRunner, false)
			require.NoError(testInstance, creationError)

			executionResult, executionError := executor.ExecuteShellLine(
				context.Background(),
				execshell.CommandLine(testShellLineConstant),
				execshell.CommandDetails{WorkingDirectory: testWorkingDirectoryConstant},
			)

			switch {
			case testCase.expectFailed:
				require.Error(testInstance, executionError)
				var failedError execshell.CommandFailedError
				require.ErrorAs(testInstance, executionError, &failedError)
				require.Equal(testInstance, testCase.expectedExitCode, failedError.ExitCode())
				require.Equal(testInstance, testCase.expectedExitCode, executionResult.ExitCode)
			case testCase.expectExecution:
				require.Error(testInstance, executionError)
				var executionFailure execshell.CommandExecutionError
				require.ErrorAs(testInstance, executionError, &executionFailure)
				require.ErrorContains(testInstance, executionFailure.Unwrap(), testRunnerFailureMessageConstant)
			default:
				require.NoError(testInstance, executionError)
				require.Equal(testInstance, testCase.runnerResult, executionResult)
			}

			require.Len(testInstance, commandRunner.recordedCommands, 1)
			recordedCommand := commandRunner.recordedCommands[0]
			require.Equal(testInstance, execshell.CommandShell, recordedCommand.Name)
			require.Equal(testInstance, []string{"-c", testShellLineConstant}, recordedCommand.Details.Arguments)

			observedEntries := observedLogs.All()
			require.Len(testInstance, observedEntries, len(testCase.expectedLevels))
			for entryIndex, expectedLevel := range testCase.expectedLevels {
				require.Equal(testInstance, expectedLevel, observedEntries[entryIndex].Level)
			}
		})
	}
}

func TestShellExecutorExecuteSequenceStopsAtFirstFailure(testInstance *testing.T) {
	commandRunner := &recordingCommandRunner{
		executionResults: []execshell.ExecutionResult{
			{StandardError: testStandardErrorOutputConstant, ExitCode: 2},
			{ExitCode: 0},
		},
	}

	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), commandRunner, false)
	require.NoError(testInstance, creationError)

	commandLines := []execshell.CommandLine{
		execshell.CommandLine(testShellLineConstant),
		execshell.CommandLine(testSecondShellLineConstant),
	}

	executionResult, executionError := executor.ExecuteSequence(context.Background(), commandLines, execshell.CommandDetails{})
	require.Error(testInstance, executionError)

	var failedError execshell.CommandFailedError
	require.ErrorAs(testInstance, executionError, &failedError)
	require.Equal(testInstance, 2, failedError.ExitCode())
	require.Equal(testInstance, 2, executionResult.ExitCode)
	require.Len(testInstance, commandRunner.recordedCommands, 1)
}

func TestShellExecutorExecuteSequenceRunsAllLinesOnSuccess(testInstance *testing.T) {
	commandRunner := &recordingCommandRunner{
		executionResults: []execshell.ExecutionResult{{ExitCode: 0}, {ExitCode: 0}},
	}

	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), commandRunner, false)
	require.NoError(testInstance, creationError)

	commandLines := []execshell.CommandLine{
		execshell.CommandLine(testShellLineConstant),
		execshell.CommandLine(testSecondShellLineConstant),
	}

	_, executionError := executor.ExecuteSequence(context.Background(), commandLines, execshell.CommandDetails{})
	require.NoError(testInstance, executionError)
	require.Len(testInstance, commandRunner.recordedCommands, 2)
}

func TestShellExecutorExecuteGitWrapper(testInstance *testing.T) {
	commandRunner := &recordingCommandRunner{executionResults: []execshell.ExecutionResult{{ExitCode: 0}}}
	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), commandRunner, false)
	require.NoError(testInstance, creationError)

	_, executionError := executor.ExecuteGit(context.Background(), execshell.CommandDetails{Arguments: []string{"--version"}})
	require.NoError(testInstance, executionError)
	require.Len(testInstance, commandRunner.recordedCommands, 1)
	require.Equal(testInstance, execshell.CommandGit, commandRunner.recordedCommands[0].Name)
}

func TestOSCommandRunnerRunsShellLines(testInstance *testing.T) {
	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner(), false)
	require.NoError(testInstance, creationError)

	executionResult, executionError := executor.ExecuteShellLine(
		context.Background(),
		execshell.CommandLine("printf first && printf secondary 1>&2"),
		execshell.CommandDetails{},
	)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "first", executionResult.StandardOutput)
	require.Equal(testInstance, "secondary", executionResult.StandardError)
	require.Zero(testInstance, executionResult.ExitCode)
}

func TestOSCommandRunnerPropagatesExitCode(testInstance *testing.T) {
	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner(), false)
	require.NoError(testInstance, creationError)

	executionResult, executionError := executor.ExecuteSequence(
		context.Background(),
		[]execshell.CommandLine{"exit 7", "printf never"},
		execshell.CommandDetails{},
	)
	require.Error(testInstance, executionError)

	var failedError execshell.CommandFailedError
	require.ErrorAs(testInstance, executionError, &failedError)
	require.Equal(testInstance, 7, failedError.ExitCode())
	require.Equal(testInstance, 7, executionResult.ExitCode)
	require.NotContains(testInstance, executionResult.StandardOutput, "never")
}

func TestStreamingOSCommandRunnerCopiesOutput(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}

	executor, creationError := execshell.NewShellExecutor(
		zap.NewNop(),
		execshell.NewStreamingOSCommandRunner(outputBuffer, errorBuffer),
		false,
	)
	require.NoError(testInstance, creationError)

	executionResult, executionError := executor.ExecuteShellLine(
		context.Background(),
		execshell.CommandLine("printf streamed"),
		execshell.CommandDetails{},
	)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "streamed", executionResult.StandardOutput)
	require.Equal(testInstance, "streamed", outputBuffer.String())
	require.Empty(testInstance, errorBuffer.String())
}
