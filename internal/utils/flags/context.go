// Package flags provides helpers for binding standardized execution flags to Cobra commands.
package flags

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Print the rendered command lines without executing them"
	// CatalogFlagName exposes the shared recipe catalog flag name.
	CatalogFlagName = "recipes"
	// CatalogFlagUsage describes the shared recipe catalog flag purpose.
	CatalogFlagUsage = "Path to a recipe catalog file overriding the embedded catalog"
)
