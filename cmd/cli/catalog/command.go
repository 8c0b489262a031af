// Package catalog provides the commands that inspect the recipe catalog.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbnursery/chore/internal/recipes"
)

const (
	listCommandUseConstant                = "list"
	listCommandAliasConstant              = "ls"
	listCommandShortDescriptionConstant   = "List the recipes in the catalog"
	listCommandLongDescriptionConstant    = "list prints every recipe with its parameters and description, in declaration order."
	showCommandUseConstant                = "show"
	showCommandUsageTemplateConstant      = showCommandUseConstant + " <recipe> [arguments...]"
	showCommandShortDescriptionConstant   = "Print the command lines a recipe would run"
	showCommandLongDescriptionConstant    = "show resolves the named recipe with the provided arguments and prints the rendered command lines without executing them."
	catalogProviderMissingMessageConstant = "catalog provider not configured"
	listingHeaderConstant                 = "Available recipes:"
	listingLineIndentConstant             = "    "
	listingDescriptionSeparatorConstant   = " # "
	defaultedParameterTemplateConstant    = "%s='%s'"
)

// ErrCatalogProviderNotConfigured indicates that a builder was assembled without a catalog source.
var ErrCatalogProviderNotConfigured = errors.New(catalogProviderMissingMessageConstant)

// CatalogProvider resolves the active recipe registry for a command invocation.
type CatalogProvider func(command *cobra.Command) (*recipes.Registry, error)

// ListCommandBuilder assembles the list command.
type ListCommandBuilder struct {
	CatalogProvider CatalogProvider
}

// Build constructs the list command.
func (builder *ListCommandBuilder) Build() (*cobra.Command, error) {
	if builder.CatalogProvider == nil {
		return nil, ErrCatalogProviderNotConfigured
	}

	command := &cobra.Command{
		Use:           listCommandUseConstant,
		Aliases:       []string{listCommandAliasConstant},
		Short:         listCommandShortDescriptionConstant,
		Long:          listCommandLongDescriptionConstant,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			registry, catalogError := builder.CatalogProvider(command)
			if catalogError != nil {
				return catalogError
			}
			RenderListing(command.OutOrStdout(), registry)
			return nil
		},
	}

	return command, nil
}

// ShowCommandBuilder assembles the show command.
type ShowCommandBuilder struct {
	CatalogProvider CatalogProvider
}

// Build constructs the show command.
func (builder *ShowCommandBuilder) Build() (*cobra.Command, error) {
	if builder.CatalogProvider == nil {
		return nil, ErrCatalogProviderNotConfigured
	}

	command := &cobra.Command{
		Use:           showCommandUsageTemplateConstant,
		Short:         showCommandShortDescriptionConstant,
		Long:          showCommandLongDescriptionConstant,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
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

			outputWriter := command.OutOrStdout()
			for _, commandLine := range plan.CommandLines() {
				fmt.Fprintln(outputWriter, commandLine)
			}
			return nil
		},
	}
	// Recipe arguments such as "-q" belong to the recipe, not the CLI.
	command.Flags().SetInterspersed(false)

	return command, nil
}

// RenderListing prints the catalog in declaration order with parameters and descriptions.
func RenderListing(outputWriter io.Writer, registry *recipes.Registry) {
	if registry == nil {
		return
	}

	declaredRecipes := registry.List()
	signatures := make([]string, 0, len(declaredRecipes))
	widestSignature := 0
	for _, declaredRecipe := range declaredRecipes {
		signature := recipeSignature(declaredRecipe)
		if len(signature) > widestSignature {
			widestSignature = len(signature)
		}
		signatures = append(signatures, signature)
	}

	fmt.Fprintln(outputWriter, listingHeaderConstant)
	for recipeIndex, declaredRecipe := range declaredRecipes {
		line := listingLineIndentConstant + signatures[recipeIndex]
		description := strings.TrimSpace(declaredRecipe.Description)
		if len(description) > 0 {
			padding := strings.Repeat(" ", widestSignature-len(signatures[recipeIndex]))
			line += padding + listingDescriptionSeparatorConstant + description
		}
		fmt.Fprintln(outputWriter, line)
	}
}

func recipeSignature(declaredRecipe recipes.Recipe) string {
	signatureParts := []string{declaredRecipe.Name}
	for _, declaredParameter := range declaredRecipe.Parameters {
		if declaredParameter.HasDefault {
			signatureParts = append(signatureParts, fmt.Sprintf(defaultedParameterTemplateConstant, declaredParameter.Name, declaredParameter.DefaultValue))
			continue
		}
		signatureParts = append(signatureParts, declaredParameter.Name)
	}
	return strings.Join(signatureParts, " ")
}
