// Package catalog loads the product catalog from a JSON resource.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"ordergen/internal/domain/entity"
	"ordergen/internal/domain/repository"
	"ordergen/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrEmptyCatalog is returned when the catalog parses successfully but
// contains zero products. No valid order can be built from it.
var ErrEmptyCatalog = errors.New("catalog contains no products")

// LoadError reports a catalog resource that is missing, unreadable,
// unparseable, or structurally invalid. It is fatal: no partial catalog
// is ever used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads a JSON array of products from a file. It implements
// repository.CatalogRepository.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given catalog file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var _ repository.CatalogRepository = (*Loader)(nil)

// catalogEntry mirrors one raw element of the catalog file. Pointers and
// raw messages distinguish missing fields from zero values.
type catalogEntry struct {
	ID    json.RawMessage  `json:"id"`
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// Load reads the catalog file and returns its products in file order.
// Every entry must carry an id, a name and a non-negative numeric price;
// any malformed entry fails the whole load with a *LoadError.
func (l *Loader) Load() ([]entity.Product, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &LoadError{Path: l.path, Err: err}
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &LoadError{Path: l.path, Err: errors.Wrap(err, "parse JSON")}
	}

	products := make([]entity.Product, 0, len(entries))
	for i, entry := range entries {
		product, err := entry.toProduct(i)
		if err != nil {
			return nil, &LoadError{Path: l.path, Err: err}
		}
		products = append(products, product)
	}

	return products, nil
}

func (e catalogEntry) toProduct(index int) (entity.Product, error) {
	id, err := parseID(e.ID)
	if err != nil {
		return entity.Product{}, errors.Wrapf(err, "entry %d", index)
	}
	if e.Name == nil || *e.Name == "" {
		return entity.Product{}, errors.Errorf("entry %d: missing name", index)
	}
	if e.Price == nil {
		return entity.Product{}, errors.Errorf("entry %d: missing price", index)
	}
	if e.Price.IsNegative() {
		return entity.Product{}, errors.Errorf("entry %d: negative price %s", index, e.Price)
	}

	return entity.Product{ID: id, Name: *e.Name, Price: *e.Price}, nil
}

// parseID accepts either a JSON string or a JSON integer identifier and
// normalizes it to a string.
func parseID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("missing id")
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return "", errors.New("empty id")
		}

		return asString, nil
	}

	var asInt int64
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return strconv.FormatInt(asInt, 10), nil
	}

	return "", errors.Errorf("id %s is neither a string nor an integer", string(raw))
}
