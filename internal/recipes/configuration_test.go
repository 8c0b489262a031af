package recipes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbnursery/chore/internal/recipes"
)

const (
	testCatalogFileNameConstant = "chorefile.yaml"
	testCatalogContentConstant  = `recipes:
  - name: pytest
    description: Run the test suite
    parameters:
      - name: ARGS
        default: "-v"
    commands:
      - uv run pytest {{ARGS}}
  - name: check
    invokes:
      - pytest
`
)

func TestLoadCatalogParsesRecipeDefinitions(t *testing.T) {
	catalogDirectory := t.TempDir()
	catalogPath := filepath.Join(catalogDirectory, testCatalogFileNameConstant)
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogContentConstant), 0o600))

	registry, loadError := recipes.LoadCatalog(catalogPath)
	require.NoError(t, loadError)
	require.Equal(t, []string{"pytest", "check"}, registry.Names())

	pytestRecipe, exists := registry.Lookup("pytest")
	require.True(t, exists)
	require.Equal(t, "Run the test suite", pytestRecipe.Description)
	require.Len(t, pytestRecipe.Parameters, 1)
	require.Equal(t, "ARGS", pytestRecipe.Parameters[0].Name)
	require.True(t, pytestRecipe.Parameters[0].HasDefault)
	require.Equal(t, "-v", pytestRecipe.Parameters[0].DefaultValue)
}

func TestLoadCatalogRejectsMissingFile(t *testing.T) {
	_, loadError := recipes.LoadCatalog(filepath.Join(t.TempDir(), testCatalogFileNameConstant))
	require.Error(t, loadError)
	require.ErrorContains(t, loadError, "failed to load recipe catalog")
}

func TestLoadCatalogRequiresPath(t *testing.T) {
	_, loadError := recipes.LoadCatalog("   ")
	require.Error(t, loadError)
	require.ErrorContains(t, loadError, "recipe catalog path must be provided")
}

func TestParseCatalogRejectsMalformedContent(t *testing.T) {
	_, parseError := recipes.ParseCatalog([]byte("recipes: [not: {balanced"))
	require.Error(t, parseError)
	require.ErrorContains(t, parseError, "failed to parse recipe catalog")
}

func TestParseCatalogRejectsEmptyCatalog(t *testing.T) {
	_, parseError := recipes.ParseCatalog([]byte("recipes: []\n"))
	require.Error(t, parseError)
	require.ErrorContains(t, parseError, "recipe catalog must declare at least one recipe")
}

func TestParseCatalogDistinguishesEmptyDefaultFromMissingDefault(t *testing.T) {
	catalogContent := `recipes:
  - name: render
    parameters:
      - name: PREFIX
        default: ""
      - name: FILE
    commands:
      - render {{FILE}}
`
	_, parseError := recipes.ParseCatalog([]byte(catalogContent))
	require.Error(t, parseError)
	require.ErrorContains(t, parseError, `declares required parameter "FILE" after a defaulted parameter`)

	reorderedContent := `recipes:
  - name: render
    parameters:
      - name: FILE
      - name: PREFIX
        default: ""
    commands:
      - render {{PREFIX}}{{FILE}}
`
	registry, reorderedError := recipes.ParseCatalog([]byte(reorderedContent))
	require.NoError(t, reorderedError)

	_, bindings, resolveError := registry.Resolve("render", []string{"notes.md"})
	require.NoError(t, resolveError)
	require.Equal(t, recipes.Bindings{"FILE": "notes.md", "PREFIX": ""}, bindings)
}
