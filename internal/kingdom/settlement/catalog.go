package settlement

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

//go:embed catalog.yaml
var embeddedCatalogYAML []byte

//go:embed structure.schema.json
var structureSchemaJSON string

var structureSchema = jsonschema.MustCompileString("structure.schema.json", structureSchemaJSON)

// Catalog resolves structure names to validated structure records.
type Catalog struct {
	byName map[string]domain.Structure
	names  []string
}

var defaultCatalog = mustLoadEmbedded()

// Default returns the embedded structure catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustLoadEmbedded() *Catalog {
	catalog, errs := LoadCatalog(embeddedCatalogYAML)
	if len(errs) > 0 {
		panic(fmt.Sprintf("embedded structure catalog is invalid: %v", errs[0]))
	}
	return catalog
}

// LoadCatalog parses a YAML catalog of structure records, validating
// each record against the structure schema. Invalid records are
// skipped and reported; parsing continues for the rest, so a single
// bad record never takes down the whole catalog.
func LoadCatalog(data []byte) (*Catalog, []error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, []error{apperrors.Wrap(apperrors.CodeStructureInvalid, "parse structure catalog", err)}
	}

	catalog := &Catalog{byName: make(map[string]domain.Structure, len(raw))}
	var errs []error

	for index, entry := range raw {
		structure, err := decodeStructure(entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := catalog.byName[structure.Name]; exists {
			errs = append(errs, apperrors.WithMetadata(
				apperrors.CodeStructureInvalid,
				fmt.Sprintf("duplicate structure %q at entry %d", structure.Name, index),
				map[string]string{"Structure": structure.Name},
			))
			continue
		}
		catalog.byName[structure.Name] = structure
		catalog.names = append(catalog.names, structure.Name)
	}

	return catalog, errs
}

// decodeStructure validates one raw record against the schema and
// decodes it into a structure. Validation happens on the JSON form so
// schema semantics match the wire format exactly.
func decodeStructure(entry map[string]any) (domain.Structure, error) {
	name, _ := entry["name"].(string)

	encoded, err := json.Marshal(entry)
	if err != nil {
		return domain.Structure{}, structureInvalidError(name, err)
	}

	var generic any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return domain.Structure{}, structureInvalidError(name, err)
	}
	if err := structureSchema.Validate(generic); err != nil {
		return domain.Structure{}, structureInvalidError(name, err)
	}

	var structure domain.Structure
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&structure); err != nil {
		return domain.Structure{}, structureInvalidError(name, err)
	}
	return structure, nil
}

func structureInvalidError(name string, cause error) *apperrors.Error {
	err := apperrors.WithMetadata(
		apperrors.CodeStructureInvalid,
		fmt.Sprintf("structure record %q failed validation", name),
		map[string]string{"Structure": name},
	)
	err.Cause = cause
	return err
}

// Get returns the named structure record.
func (c *Catalog) Get(name string) (domain.Structure, error) {
	structure, ok := c.byName[name]
	if !ok {
		return domain.Structure{}, apperrors.WithMetadata(
			apperrors.CodeStructureNotInCatalog,
			fmt.Sprintf("structure %q is not in the catalog", name),
			map[string]string{"Structure": name},
		)
	}
	return structure, nil
}

// Resolve maps placed structure names to their records, preserving
// order and duplicates (each placement aggregates independently).
func (c *Catalog) Resolve(names []string) ([]domain.Structure, error) {
	out := make([]domain.Structure, 0, len(names))
	for _, name := range names {
		structure, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, structure)
	}
	return out, nil
}

// Names lists the catalog's structure names in definition order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
