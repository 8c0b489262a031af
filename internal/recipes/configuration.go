package recipes

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	catalogPathRequiredMessageConstant = "recipe catalog path must be provided"
	catalogLoadErrorTemplateConstant   = "failed to load recipe catalog: %w"
	catalogParseErrorTemplateConstant  = "failed to parse recipe catalog: %w"
	catalogEmptyMessageConstant        = "recipe catalog must declare at least one recipe"
	catalogBuildErrorTemplateConstant  = "invalid recipe catalog: %w"
)

type catalogFile struct {
	Recipes []recipeDefinition `yaml:"recipes"`
}

type recipeDefinition struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Parameters  []parameterDefinition `yaml:"parameters"`
	Invokes     []string              `yaml:"invokes"`
	Commands    []string              `yaml:"commands"`
}

type parameterDefinition struct {
	Name         string  `yaml:"name"`
	DefaultValue *string `yaml:"default"`
}

// LoadCatalog reads a recipe catalog file from disk and builds the validated registry.
func LoadCatalog(filePath string) (*Registry, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return nil, errors.New(catalogPathRequiredMessageConstant)
	}

	catalogContent, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return nil, fmt.Errorf(catalogLoadErrorTemplateConstant, readError)
	}

	return ParseCatalog(catalogContent)
}

// ParseCatalog decodes catalog content and builds the validated registry.
func ParseCatalog(catalogContent []byte) (*Registry, error) {
	var parsedCatalog catalogFile
	if unmarshalError := yaml.Unmarshal(catalogContent, &parsedCatalog); unmarshalError != nil {
		return nil, fmt.Errorf(catalogParseErrorTemplateConstant, unmarshalError)
	}

	if len(parsedCatalog.Recipes) == 0 {
		return nil, errors.New(catalogEmptyMessageConstant)
	}

	declaredRecipes := make([]Recipe, 0, len(parsedCatalog.Recipes))
	for _, definition := range parsedCatalog.Recipes {
		declaredRecipes = append(declaredRecipes, buildRecipe(definition))
	}

	registry, buildError := NewRegistry(declaredRecipes)
	if buildError != nil {
		return nil, fmt.Errorf(catalogBuildErrorTemplateConstant, buildError)
	}
	return registry, nil
}

func buildRecipe(definition recipeDefinition) Recipe {
	declaredParameters := make([]Parameter, 0, len(definition.Parameters))
	for _, parameter := range definition.Parameters {
		declaredParameter := Parameter{Name: strings.TrimSpace(parameter.Name)}
		if parameter.DefaultValue != nil {
			declaredParameter.DefaultValue = *parameter.DefaultValue
			declaredParameter.HasDefault = true
		}
		declaredParameters = append(declaredParameters, declaredParameter)
	}

	return Recipe{
		Name:             strings.TrimSpace(definition.Name),
		Description:      strings.TrimSpace(definition.Description),
		Parameters:       declaredParameters,
		Invokes:          append([]string{}, definition.Invokes...),
		CommandTemplates: append([]string{}, definition.Commands...),
	}
}
