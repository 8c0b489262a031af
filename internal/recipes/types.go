package recipes

// Parameter declares a named recipe argument with an optional default value.
type Parameter struct {
	Name         string
	DefaultValue string
	HasDefault   bool
}

// Recipe is an immutable named sequence of parameterized shell command templates.
type Recipe struct {
	Name             string
	Description      string
	Parameters       []Parameter
	Invokes          []string
	CommandTemplates []string
}

// Invocation pairs a recipe name with the caller-supplied positional arguments.
type Invocation struct {
	RecipeName string
	Arguments  []string
}

// Bindings maps parameter names to their resolved values.
type Bindings map[string]string

// PlanStep holds the fully rendered command lines contributed by one recipe.
type PlanStep struct {
	RecipeName   string
	CommandLines []string
}

// Plan is the ordered sequence of rendered steps produced for an invocation.
type Plan struct {
	Steps []PlanStep
}

// CommandLines flattens the plan into a single ordered command list.
func (plan Plan) CommandLines() []string {
	flattened := make([]string, 0)
	for _, step := range plan.Steps {
		flattened = append(flattened, step.CommandLines...)
	}
	return flattened
}
