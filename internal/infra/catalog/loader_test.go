package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": "sku-1", "name": "Mechanical Keyboard", "price": 89.99},
		{"id": 42, "name": "USB-C Hub", "price": 25},
		{"id": "sku-1", "name": "Mechanical Keyboard (duplicate)", "price": 89.99}
	]`)

	products, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "sku-1", products[0].ID)
	assert.Equal(t, "Mechanical Keyboard", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("89.99")))

	// Integer ids normalize to strings.
	assert.Equal(t, "42", products[1].ID)

	// Duplicates pass through unaltered, preserving file order.
	assert.Equal(t, "sku-1", products[2].ID)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.json")).Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Path, "nope.json")
}

func TestLoader_Load_MalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not JSON", content: `{{{`},
		{name: "not an array", content: `{"id": "a", "name": "b", "price": 1}`},
		{name: "missing id", content: `[{"name": "b", "price": 1}]`},
		{name: "missing name", content: `[{"id": "a", "price": 1}]`},
		{name: "missing price", content: `[{"id": "a", "name": "b"}]`},
		{name: "non-numeric price", content: `[{"id": "a", "name": "b", "price": "cheap"}]`},
		{name: "negative price", content: `[{"id": "a", "name": "b", "price": -1}]`},
		{name: "boolean id", content: `[{"id": true, "name": "b", "price": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			_, err := NewLoader(path).Load()
			require.Error(t, err)

			var loadErr *LoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}

func TestLoader_Load_EmptyArray(t *testing.T) {
	path := writeCatalog(t, `[]`)

	products, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Empty(t, products)
}
