package themes

import "testing"

func TestResolveKnownTheme(t *testing.T) {
	theme := Resolve("neon")
	if theme.ID != "neon" {
		t.Errorf("Expected neon theme, got %q", theme.ID)
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	theme := Resolve("does-not-exist")
	if theme.ID != DefaultID {
		t.Errorf("Expected fallback to default theme, got %q", theme.ID)
	}
}

func TestDefaultThemeIsFree(t *testing.T) {
	theme := Resolve(DefaultID)
	if theme.Cost != 0 {
		t.Errorf("Default theme must be free, got cost %d", theme.Cost)
	}
}

func TestListSortedByCost(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("Expected the builtin themes to be registered, got %d", len(list))
	}

	if list[0].ID != DefaultID {
		t.Errorf("Expected the free default theme first, got %q", list[0].ID)
	}
	for i := 1; i < len(list); i++ {
		if list[i].Cost < list[i-1].Cost {
			t.Errorf("Themes out of cost order: %q (%d) after %q (%d)",
				list[i].ID, list[i].Cost, list[i-1].ID, list[i-1].Cost)
		}
	}
}

func TestExists(t *testing.T) {
	if !Exists(DefaultID) {
		t.Error("Default theme must exist")
	}
	if Exists("missing") {
		t.Error("Unknown id must not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register(Theme{ID: DefaultID, Name: "Duplicate"})
}
