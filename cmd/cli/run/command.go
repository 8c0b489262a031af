// Package run provides the command that executes a recipe.
package run

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nbnursery/chore/internal/execshell"
	"github.com/nbnursery/chore/internal/recipes"
	"github.com/nbnursery/chore/internal/utils"
	flagutils "github.com/nbnursery/chore/internal/utils/flags"
	"github.com/nbnursery/chore/pkg/reciperunner"
)

const (
	commandUseConstant                    = "run"
	commandUsageTemplateConstant          = commandUseConstant + " <recipe> [arguments...]"
	commandAliasConstant                  = "r"
	commandShortDescriptionConstant       = "Execute a recipe"
	commandLongDescriptionConstant        = "run resolves the named recipe, renders its command lines, and executes them in order, halting at the first failure. --dry-run prints the rendered lines instead."
	loggerProviderMissingMessageConstant  = "run command logger provider not configured"
	catalogProviderMissingMessageConstant = "run command catalog provider not configured"
	executorCreationErrorTemplateConstant = "unable to create shell executor: %w"
)

// ErrLoggerProviderNotConfigured indicates the builder was assembled without a logger source.
var ErrLoggerProviderNotConfigured = errors.New(loggerProviderMissingMessageConstant)

// ErrCatalogProviderNotConfigured indicates the builder was assembled without a catalog source.
var ErrCatalogProviderNotConfigured = errors.New(catalogProviderMissingMessageConstant)

// CommandBuilder assembles the run command.
type CommandBuilder struct {
	LoggerProvider               func() *zap.Logger
	HumanReadableLoggingProvider func() bool
	CatalogProvider              func(command *cobra.Command) (*recipes.Registry, error)
	WorkingDirectoryProvider     func() string
	RunnerFactory                reciperunner.Factory
	CommandRunner                execshell.CommandRunner
}

// Build constructs the run command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	if builder.LoggerProvider == nil {
		return nil, ErrLoggerProviderNotConfigured
	}
	if builder.CatalogProvider == nil {
		return nil, ErrCatalogProviderNotConfigured
	}

	command := &cobra.Command{
		Use:           commandUsageTemplateConstant,
		Aliases:       []string{commandAliasConstant},
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.runRecipe(command, arguments)
		},
	}
	// Recipe arguments such as "-q" belong to the recipe, not the CLI.
	command.Flags().SetInterspersed(false)

	return command, nil
}

func (builder *CommandBuilder) runRecipe(command *cobra.Command, arguments []string) error {
	registry, catalogError := builder.CatalogProvider(command)
	if catalogError != nil {
		return catalogError
	}

	recipeName := arguments[0]
	recipeArguments := arguments[1:]
	if _, _, resolveError := registry.Resolve(recipeName, recipeArguments); resolveError != nil {
		return resolveError
	}

	plan, renderError := registry.Render(recipes.Invocation{RecipeName: recipeName, Arguments: recipeArguments})
	if renderError != nil {
		return renderError
	}

	executionFlags, _ := flagutils.ResolveExecutionFlags(command)

	executor, executorError := builder.resolveExecutor(command)
	if executorError != nil {
		return executorError
	}

	_, runError := executor.Run(command.Context(), recipeName, plan, reciperunner.RuntimeOptions{
		WorkingDirectory: builder.workingDirectory(),
		DryRun:           executionFlags.DryRun,
	})
	return runError
}

func (builder *CommandBuilder) resolveExecutor(command *cobra.Command) (reciperunner.Executor, error) {
	commandRunner := builder.CommandRunner
	if commandRunner == nil {
		commandRunner = execshell.NewStreamingOSCommandRunner(
			utils.NewFlushingWriter(command.OutOrStdout()),
			utils.NewFlushingWriter(command.ErrOrStderr()),
		)
	}

	shellExecutor, creationError := execshell.NewShellExecutor(
		builder.LoggerProvider(),
		commandRunner,
		builder.humanReadableLogging(),
	)
	if creationError != nil {
		return nil, fmt.Errorf(executorCreationErrorTemplateConstant, creationError)
	}

	return reciperunner.Resolve(builder.RunnerFactory, reciperunner.Dependencies{
		Logger:           builder.LoggerProvider(),
		SequenceExecutor: shellExecutor,
		Output:           command.OutOrStdout(),
		Errors:           command.ErrOrStderr(),
	}), nil
}

func (builder *CommandBuilder) humanReadableLogging() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CommandBuilder) workingDirectory() string {
	if builder.WorkingDirectoryProvider == nil {
		return ""
	}
	return builder.WorkingDirectoryProvider()
}
