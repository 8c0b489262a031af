package reciperunner

import (
	"fmt"
	"time"
)

const summaryDurationResolution = time.Millisecond

const (
	summarySucceededTemplateConstant = "chore: %s finished (%d commands, %s)"
	summaryFailedTemplateConstant    = "chore: %s failed with exit code %d (%s)"
	summaryDryRunTemplateConstant    = "chore: %s dry run (%d commands)"
)

// RenderSummaryLine formats an outcome into the single trailing status line.
func RenderSummaryLine(outcome Outcome) string {
	if outcome.DryRun {
		return fmt.Sprintf(summaryDryRunTemplateConstant, outcome.RecipeName, outcome.CommandCount)
	}
	elapsed := outcome.Duration().Round(summaryDurationResolution)
	if outcome.ExitCode != 0 {
		return fmt.Sprintf(summaryFailedTemplateConstant, outcome.RecipeName, outcome.ExitCode, elapsed)
	}
	return fmt.Sprintf(summarySucceededTemplateConstant, outcome.RecipeName, outcome.CommandCount, elapsed)
}
