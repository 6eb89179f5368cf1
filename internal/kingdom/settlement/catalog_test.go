package settlement

import (
	"testing"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
)

func TestDefaultCatalog_Loads(t *testing.T) {
	catalog := Default()
	if len(catalog.Names()) == 0 {
		t.Fatalf("embedded catalog is empty")
	}

	granary, err := catalog.Get("Granary")
	if err != nil {
		t.Fatalf("Get(Granary) error = %v", err)
	}
	if granary.Storage.Food != 1 {
		t.Errorf("Granary food storage = %d, want 1", granary.Storage.Food)
	}

	castle, err := catalog.Get("Castle")
	if err != nil {
		t.Fatalf("Get(Castle) error = %v", err)
	}
	if !castle.IncreaseLeadershipActivities {
		t.Errorf("Castle should increase leadership activities")
	}
	if len(castle.SkillRequirements()) != 2 {
		t.Errorf("Castle skill requirements = %d, want 2", len(castle.SkillRequirements()))
	}
}

func TestLoadCatalog_SkipsInvalidRecords(t *testing.T) {
	data := []byte(`
- name: Granary
  storage:
    food: 1
- name: ""
  storage:
    food: 2
- name: Pier
  storage:
    fish: 3
- name: Watchtower
  reducesUnrest: true
`)

	catalog, errs := LoadCatalog(data)
	if catalog == nil {
		t.Fatalf("LoadCatalog() returned nil catalog")
	}
	if len(errs) != 2 {
		t.Fatalf("LoadCatalog() errors = %d, want 2 (empty name, unknown storage key): %v", len(errs), errs)
	}
	for _, err := range errs {
		if !apperrors.IsCode(err, apperrors.CodeStructureInvalid) {
			t.Errorf("error code = %v, want STRUCTURE_INVALID", apperrors.GetCode(err))
		}
	}

	// Valid records around the invalid ones survive.
	if _, err := catalog.Get("Granary"); err != nil {
		t.Errorf("Get(Granary) error = %v", err)
	}
	if _, err := catalog.Get("Watchtower"); err != nil {
		t.Errorf("Get(Watchtower) error = %v", err)
	}
}

func TestLoadCatalog_DuplicateNames(t *testing.T) {
	data := []byte(`
- name: Granary
- name: Granary
`)
	catalog, errs := LoadCatalog(data)
	if len(errs) != 1 {
		t.Fatalf("LoadCatalog() errors = %d, want 1 duplicate error", len(errs))
	}
	if len(catalog.Names()) != 1 {
		t.Errorf("catalog names = %v, want the first Granary only", catalog.Names())
	}
}

func TestCatalogGet_Unknown(t *testing.T) {
	_, err := Default().Get("Opera House")
	if !apperrors.IsCode(err, apperrors.CodeStructureNotInCatalog) {
		t.Errorf("Get() code = %v, want STRUCTURE_NOT_IN_CATALOG", apperrors.GetCode(err))
	}
}

func TestCatalogResolve_PreservesDuplicates(t *testing.T) {
	structures, err := Default().Resolve([]string{"Granary", "Granary", "Mill"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(structures) != 3 {
		t.Fatalf("Resolve() len = %d, want 3", len(structures))
	}
	if structures[0].Name != "Granary" || structures[1].Name != "Granary" {
		t.Errorf("Resolve() should keep duplicate placements")
	}
}
