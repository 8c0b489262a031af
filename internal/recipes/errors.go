package recipes

import (
	"fmt"
	"strings"
)

const (
	unknownRecipeTemplateConstant           = "unknown recipe %q"
	missingArgumentTemplateConstant         = "recipe %q requires an argument for parameter %q"
	tooManyArgumentsTemplateConstant        = "recipe %q accepts %d argument(s) but %d were provided"
	duplicateRecipeTemplateConstant         = "recipe %q is declared more than once"
	unresolvedPlaceholderTemplateConstant   = "recipe %q references undeclared placeholder %q"
	unknownInvocationTemplateConstant       = "recipe %q invokes unknown recipe %q"
	cyclicInvocationTemplateConstant        = "recipe invocation cycle detected: %s"
	invokedRecipeArgumentsTemplateConstant  = "recipe %q invokes %q which requires arguments"
	cyclicInvocationChainSeparatorConstant  = " -> "
	recipeNameMissingMessageConstant        = "recipe name must be provided"
	recipeBodyMissingTemplateConstant       = "recipe %q must declare command lines or invocations"
	parameterNameInvalidTemplateConstant    = "recipe %q declares invalid parameter name %q"
	parameterAfterDefaultTemplateConstant   = "recipe %q declares required parameter %q after a defaulted parameter"
	duplicateParameterNameTemplateConstant  = "recipe %q declares parameter %q more than once"
)

// UnknownRecipeError indicates the requested recipe name is not in the registry.
type UnknownRecipeError struct {
	RecipeName string
}

// Error implements the error interface.
func (errorDetails UnknownRecipeError) Error() string {
	return fmt.Sprintf(unknownRecipeTemplateConstant, errorDetails.RecipeName)
}

// MissingArgumentError indicates a required parameter received no argument.
type MissingArgumentError struct {
	RecipeName    string
	ParameterName string
}

// Error implements the error interface.
func (errorDetails MissingArgumentError) Error() string {
	return fmt.Sprintf(missingArgumentTemplateConstant, errorDetails.RecipeName, errorDetails.ParameterName)
}

// TooManyArgumentsError indicates more positional arguments than declared parameters.
type TooManyArgumentsError struct {
	RecipeName    string
	DeclaredCount int
	ProvidedCount int
}

// Error implements the error interface.
func (errorDetails TooManyArgumentsError) Error() string {
	return fmt.Sprintf(tooManyArgumentsTemplateConstant, errorDetails.RecipeName, errorDetails.DeclaredCount, errorDetails.ProvidedCount)
}

// DuplicateRecipeError indicates the catalog declares the same recipe twice.
type DuplicateRecipeError struct {
	RecipeName string
}

// Error implements the error interface.
func (errorDetails DuplicateRecipeError) Error() string {
	return fmt.Sprintf(duplicateRecipeTemplateConstant, errorDetails.RecipeName)
}

// UnresolvedPlaceholderError indicates a template references an undeclared parameter.
type UnresolvedPlaceholderError struct {
	RecipeName      string
	PlaceholderName string
}

// Error implements the error interface.
func (errorDetails UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf(unresolvedPlaceholderTemplateConstant, errorDetails.RecipeName, errorDetails.PlaceholderName)
}

// UnknownInvocationError indicates a recipe invokes a name absent from the catalog.
type UnknownInvocationError struct {
	RecipeName  string
	InvokedName string
}

// Error implements the error interface.
func (errorDetails UnknownInvocationError) Error() string {
	return fmt.Sprintf(unknownInvocationTemplateConstant, errorDetails.RecipeName, errorDetails.InvokedName)
}

// CyclicInvocationError indicates the invocation graph contains a cycle.
type CyclicInvocationError struct {
	RecipeNames []string
}

// Error implements the error interface.
func (errorDetails CyclicInvocationError) Error() string {
	return fmt.Sprintf(cyclicInvocationTemplateConstant, strings.Join(errorDetails.RecipeNames, cyclicInvocationChainSeparatorConstant))
}

// InvokedRecipeRequiresArgumentsError indicates an invoked recipe has required parameters.
type InvokedRecipeRequiresArgumentsError struct {
	RecipeName  string
	InvokedName string
}

// Error implements the error interface.
func (errorDetails InvokedRecipeRequiresArgumentsError) Error() string {
	return fmt.Sprintf(invokedRecipeArgumentsTemplateConstant, errorDetails.RecipeName, errorDetails.InvokedName)
}

type recipeBodyMissingError struct {
	recipeName string
}

func (errorDetails *recipeBodyMissingError) Error() string {
	return fmt.Sprintf(recipeBodyMissingTemplateConstant, errorDetails.recipeName)
}

type parameterNameInvalidError struct {
	recipeName    string
	parameterName string
}

func (errorDetails *parameterNameInvalidError) Error() string {
	return fmt.Sprintf(parameterNameInvalidTemplateConstant, errorDetails.recipeName, errorDetails.parameterName)
}

type duplicateParameterNameError struct {
	recipeName    string
	parameterName string
}

func (errorDetails *duplicateParameterNameError) Error() string {
	return fmt.Sprintf(duplicateParameterNameTemplateConstant, errorDetails.recipeName, errorDetails.parameterName)
}

type parameterAfterDefaultError struct {
	recipeName    string
	parameterName string
}

func (errorDetails *parameterAfterDefaultError) Error() string {
	return fmt.Sprintf(parameterAfterDefaultTemplateConstant, errorDetails.recipeName, errorDetails.parameterName)
}
