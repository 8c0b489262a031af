package recipes

import (
	"errors"
	"regexp"
	"strings"
)

var parameterNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Registry holds the immutable recipe catalog in declaration order.
type Registry struct {
	orderedRecipes []Recipe
	recipeIndexes  map[string]int
}

// NewRegistry validates the declared recipes and builds the lookup registry.
func NewRegistry(declaredRecipes []Recipe) (*Registry, error) {
	registry := &Registry{
		orderedRecipes: make([]Recipe, 0, len(declaredRecipes)),
		recipeIndexes:  make(map[string]int, len(declaredRecipes)),
	}

	for _, declaredRecipe := range declaredRecipes {
		trimmedName := strings.TrimSpace(declaredRecipe.Name)
		if len(trimmedName) == 0 {
			return nil, errors.New(recipeNameMissingMessageConstant)
		}
		if _, exists := registry.recipeIndexes[trimmedName]; exists {
			return nil, DuplicateRecipeError{RecipeName: trimmedName}
		}

		declaredRecipe.Name = trimmedName
		if validationError := validateRecipe(declaredRecipe); validationError != nil {
			return nil, validationError
		}

		registry.recipeIndexes[trimmedName] = len(registry.orderedRecipes)
		registry.orderedRecipes = append(registry.orderedRecipes, declaredRecipe)
	}

	if invocationError := registry.validateInvocations(); invocationError != nil {
		return nil, invocationError
	}

	return registry, nil
}

// List returns the catalog recipes in declaration order.
func (registry *Registry) List() []Recipe {
	listed := make([]Recipe, len(registry.orderedRecipes))
	copy(listed, registry.orderedRecipes)
	return listed
}

// Names returns the recipe names in declaration order.
func (registry *Registry) Names() []string {
	names := make([]string, 0, len(registry.orderedRecipes))
	for _, listedRecipe := range registry.orderedRecipes {
		names = append(names, listedRecipe.Name)
	}
	return names
}

// Lookup finds a recipe by exact name.
func (registry *Registry) Lookup(recipeName string) (Recipe, bool) {
	recipeIndex, exists := registry.recipeIndexes[recipeName]
	if !exists {
		return Recipe{}, false
	}
	return registry.orderedRecipes[recipeIndex], true
}

// Resolve binds positional arguments to the named recipe's parameters, applying declared defaults.
func (registry *Registry) Resolve(recipeName string, arguments []string) (Recipe, Bindings, error) {
	resolvedRecipe, exists := registry.Lookup(recipeName)
	if !exists {
		return Recipe{}, nil, UnknownRecipeError{RecipeName: recipeName}
	}

	if len(arguments) > len(resolvedRecipe.Parameters) {
		return Recipe{}, nil, TooManyArgumentsError{
			RecipeName:    recipeName,
			DeclaredCount: len(resolvedRecipe.Parameters),
			ProvidedCount: len(arguments),
		}
	}

	bindings := make(Bindings, len(resolvedRecipe.Parameters))
	for parameterIndex, declaredParameter := range resolvedRecipe.Parameters {
		if parameterIndex < len(arguments) {
			bindings[declaredParameter.Name] = arguments[parameterIndex]
			continue
		}
		if !declaredParameter.HasDefault {
			return Recipe{}, nil, MissingArgumentError{RecipeName: recipeName, ParameterName: declaredParameter.Name}
		}
		bindings[declaredParameter.Name] = declaredParameter.DefaultValue
	}

	return resolvedRecipe, bindings, nil
}

// Render resolves the invocation and produces the ordered, fully substituted command plan.
func (registry *Registry) Render(invocation Invocation) (Plan, error) {
	resolvedRecipe, bindings, resolveError := registry.Resolve(invocation.RecipeName, invocation.Arguments)
	if resolveError != nil {
		return Plan{}, resolveError
	}

	plan := Plan{}
	for _, invokedName := range resolvedRecipe.Invokes {
		invokedPlan, invokedError := registry.Render(Invocation{RecipeName: invokedName})
		if invokedError != nil {
			return Plan{}, invokedError
		}
		plan.Steps = append(plan.Steps, invokedPlan.Steps...)
	}

	if len(resolvedRecipe.CommandTemplates) > 0 {
		renderedLines := make([]string, 0, len(resolvedRecipe.CommandTemplates))
		for _, commandTemplate := range resolvedRecipe.CommandTemplates {
			renderedLines = append(renderedLines, renderTemplate(commandTemplate, bindings))
		}
		plan.Steps = append(plan.Steps, PlanStep{RecipeName: resolvedRecipe.Name, CommandLines: renderedLines})
	}

	return plan, nil
}

func validateRecipe(declaredRecipe Recipe) error {
	if len(declaredRecipe.CommandTemplates) == 0 && len(declaredRecipe.Invokes) == 0 {
		return &recipeBodyMissingError{recipeName: declaredRecipe.Name}
	}

	seenParameters := make(map[string]struct{}, len(declaredRecipe.Parameters))
	defaultSeen := false
	for _, declaredParameter := range declaredRecipe.Parameters {
		if !parameterNamePattern.MatchString(declaredParameter.Name) {
			return &parameterNameInvalidError{recipeName: declaredRecipe.Name, parameterName: declaredParameter.Name}
		}
		if _, duplicated := seenParameters[declaredParameter.Name]; duplicated {
			return &duplicateParameterNameError{recipeName: declaredRecipe.Name, parameterName: declaredParameter.Name}
		}
		seenParameters[declaredParameter.Name] = struct{}{}

		if declaredParameter.HasDefault {
			defaultSeen = true
		} else if defaultSeen {
			return &parameterAfterDefaultError{recipeName: declaredRecipe.Name, parameterName: declaredParameter.Name}
		}
	}

	for _, commandTemplate := range declaredRecipe.CommandTemplates {
		for _, referencedPlaceholder := range placeholderNames(commandTemplate) {
			if _, declared := seenParameters[referencedPlaceholder]; !declared {
				return UnresolvedPlaceholderError{RecipeName: declaredRecipe.Name, PlaceholderName: referencedPlaceholder}
			}
		}
	}

	return nil
}

func (registry *Registry) validateInvocations() error {
	for _, declaredRecipe := range registry.orderedRecipes {
		for _, invokedName := range declaredRecipe.Invokes {
			invokedRecipe, exists := registry.Lookup(invokedName)
			if !exists {
				return UnknownInvocationError{RecipeName: declaredRecipe.Name, InvokedName: invokedName}
			}
			for _, invokedParameter := range invokedRecipe.Parameters {
				if !invokedParameter.HasDefault {
					return InvokedRecipeRequiresArgumentsError{RecipeName: declaredRecipe.Name, InvokedName: invokedName}
				}
			}
		}
	}

	return registry.detectInvocationCycles()
}

func (registry *Registry) detectInvocationCycles() error {
	const (
		visitStateUnvisited = 0
		visitStateInStack   = 1
		visitStateFinished  = 2
	)

	visitStates := make(map[string]int, len(registry.orderedRecipes))
	invocationStack := make([]string, 0, len(registry.orderedRecipes))

	var visit func(recipeName string) error
	visit = func(recipeName string) error {
		switch visitStates[recipeName] {
		case visitStateFinished:
			return nil
		case visitStateInStack:
			cycleStart := 0
			for stackIndex, stackedName := range invocationStack {
				if stackedName == recipeName {
					cycleStart = stackIndex
					break
				}
			}
			cycle := append([]string{}, invocationStack[cycleStart:]...)
			cycle = append(cycle, recipeName)
			return CyclicInvocationError{RecipeNames: cycle}
		}

		visitStates[recipeName] = visitStateInStack
		invocationStack = append(invocationStack, recipeName)

		currentRecipe, _ := registry.Lookup(recipeName)
		for _, invokedName := range currentRecipe.Invokes {
			if visitError := visit(invokedName); visitError != nil {
				return visitError
			}
		}

		invocationStack = invocationStack[:len(invocationStack)-1]
		visitStates[recipeName] = visitStateFinished
		return nil
	}

	for _, declaredRecipe := range registry.orderedRecipes {
		if visitError := visit(declaredRecipe.Name); visitError != nil {
			return visitError
		}
	}

	return nil
}
