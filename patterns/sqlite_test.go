package patterns

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "patterns.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	original := Table{
		"UNIT_GRID": {EstimatedUnit: "m", Confidence: 0.85},
		"DOOR_A": {
			EstimatedUnit: "mm",
			RoleUnits:     map[string]string{"site": "m", "plan": "mm"},
			Confidence:    0.6,
		},
	}
	if err := store.PutAll(original); err != nil {
		t.Fatalf("PutAll() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d patterns, want 2", len(loaded))
	}
	if loaded["UNIT_GRID"].EstimatedUnit != "m" || loaded["UNIT_GRID"].Confidence != 0.85 {
		t.Errorf("UNIT_GRID = %+v", loaded["UNIT_GRID"])
	}
	if loaded["DOOR_A"].RoleUnits["site"] != "m" {
		t.Errorf("DOOR_A role units = %v", loaded["DOOR_A"].RoleUnits)
	}
}

func TestSQLitePutReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("UNIT_GRID", BlockPattern{EstimatedUnit: "mm", Confidence: 0.4}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("UNIT_GRID", BlockPattern{EstimatedUnit: "m", Confidence: 0.9}); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d patterns, want 1", len(loaded))
	}
	if got := loaded["UNIT_GRID"]; got.EstimatedUnit != "m" || got.Confidence != 0.9 {
		t.Errorf("UNIT_GRID = %+v, want replaced value", got)
	}
}

func TestSQLiteEnsureSchemaIdempotent(t *testing.T) {
	store := openTestStore(t)
	if err := store.EnsureSchema(); err != nil {
		t.Errorf("second EnsureSchema() failed: %v", err)
	}
}
