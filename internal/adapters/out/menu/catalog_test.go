package menu_test

import (
	"os"
	"path/filepath"
	"testing"

	"restaurant/internal/adapters/out/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMenuFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCatalog(t *testing.T) {
	t.Run("should load dishes in menu order", func(t *testing.T) {
		path := writeMenuFile(t, `[
  {"id": "milanesa", "name": "Milanesa con papas", "unit_price": 1200, "stage": "main", "diets": ["none"]},
  {"id": "flan", "name": "Flan casero", "unit_price": 400, "stage": "dessert"}
]`)

		catalog, err := menu.NewCatalog(path)
		require.NoError(t, err)

		dishes := catalog.All()
		require.Len(t, dishes, 2)
		assert.Equal(t, "milanesa", dishes[0].ID)
		assert.Equal(t, "Flan casero", dishes[1].Name)
	})

	t.Run("should reject duplicate dish ids", func(t *testing.T) {
		path := writeMenuFile(t, `[
  {"id": "flan", "name": "Flan casero", "unit_price": 400},
  {"id": "flan", "name": "Flan mixto", "unit_price": 500}
]`)

		_, err := menu.NewCatalog(path)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative prices", func(t *testing.T) {
		path := writeMenuFile(t, `[{"id": "flan", "name": "Flan casero", "unit_price": -1}]`)
		_, err := menu.NewCatalog(path)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject missing file", func(t *testing.T) {
		_, err := menu.NewCatalog(filepath.Join(t.TempDir(), "absent.json"))
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})

	t.Run("should reject malformed file", func(t *testing.T) {
		path := writeMenuFile(t, "[not json")
		_, err := menu.NewCatalog(path)
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})
}

func TestCatalogResolve(t *testing.T) {
	path := writeMenuFile(t, `[{"id": "milanesa", "name": "Milanesa con papas", "unit_price": 1200}]`)
	catalog, err := menu.NewCatalog(path)
	require.NoError(t, err)

	t.Run("should find known dish", func(t *testing.T) {
		dish, resolveErr := catalog.Resolve("milanesa")
		require.NoError(t, resolveErr)
		assert.Equal(t, 1200, dish.UnitPrice)
	})

	t.Run("should report NotFound for unknown dish", func(t *testing.T) {
		_, resolveErr := catalog.Resolve("sushi")
		require.ErrorIs(t, resolveErr, errs.ErrObjectNotFound)
	})
}
