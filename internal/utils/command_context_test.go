package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithRecipeCatalogPathStoresTrimmedValue(t *testing.T) {
	accessor := NewCommandContextAccessor()
	base := context.Background()
	enriched := accessor.WithRecipeCatalogPath(base, "  ./chorefile.yaml ")

	catalogPath, exists := accessor.RecipeCatalogPath(enriched)
	require.True(t, exists)
	require.Equal(t, "./chorefile.yaml", catalogPath)
}

func TestWithRecipeCatalogPathSkipsEmptyValue(t *testing.T) {
	accessor := NewCommandContextAccessor()
	base := context.Background()
	enriched := accessor.WithRecipeCatalogPath(base, "   ")

	_, exists := accessor.RecipeCatalogPath(enriched)
	require.False(t, exists)
}

func TestWithConfigurationFilePathRoundTrip(t *testing.T) {
	accessor := NewCommandContextAccessor()
	base := context.Background()
	enriched := accessor.WithConfigurationFilePath(base, "./config.yaml")

	configurationFilePath, exists := accessor.ConfigurationFilePath(enriched)
	require.True(t, exists)
	require.Equal(t, "./config.yaml", configurationFilePath)
}

func TestWithExecutionFlagsStoresValues(t *testing.T) {
	accessor := NewCommandContextAccessor()
	base := context.Background()
	flags := ExecutionFlags{DryRun: true, DryRunSet: true}

	enriched := accessor.WithExecutionFlags(base, flags)

	retrieved, exists := accessor.ExecutionFlags(enriched)
	require.True(t, exists)
	require.Equal(t, flags, retrieved)
}

func TestWithExecutionFlagsHandlesMissingContext(t *testing.T) {
	accessor := NewCommandContextAccessor()

	_, exists := accessor.ExecutionFlags(context.Background())
	require.False(t, exists)
}

func TestWithLogLevelStoresTrimmedValue(t *testing.T) {
	accessor := NewCommandContextAccessor()
	base := context.Background()
	enriched := accessor.WithLogLevel(base, " debug ")

	logLevel, exists := accessor.LogLevel(enriched)
	require.True(t, exists)
	require.Equal(t, "debug", logLevel)
}
