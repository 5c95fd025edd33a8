package memory

import "testing"

func TestStore(t *testing.T) {
	store := NewStore[string]()

	if err := store.Save("a", "first"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save("b", "second"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	val, err := store.Load("a")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if val != "first" {
		t.Fatalf("expected 'first', got: %v", val)
	}

	if err := store.Save("a", "replaced"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	val, _ = store.Load("a")
	if val != "replaced" {
		t.Fatalf("expected save to overwrite, got: %v", val)
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("loadall failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got: %d", len(all))
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load("a"); err == nil {
		t.Fatal("expected load of deleted key to fail")
	}
}

func TestLoadMissingKey(t *testing.T) {
	store := NewStore[int]()
	if _, err := store.Load("nope"); err == nil {
		t.Fatal("expected an error for a missing key")
	}
}
