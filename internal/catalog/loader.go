package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed exercises.toml
var defaultCatalogData []byte

type catalogFile struct {
	Exercises []Exercise `toml:"exercise"`
}

// Default returns the catalog shipped with the service.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogData)
}

// LoadFile reads a TOML catalog made of [[exercise]] tables.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, ex := range f.Exercises {
		if !ex.Difficulty.IsValid() {
			return nil, fmt.Errorf("exercise %s: invalid difficulty [%s]", ex.ID, ex.Difficulty)
		}
	}
	return New(f.Exercises)
}
