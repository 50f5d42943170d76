package command

import "testing"

func TestRegistryGet(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}

	doc := reg.Get("GET")
	if doc == nil {
		t.Fatal("GET should exist in registry")
	}
	if doc.Command != "GET" {
		t.Errorf("expected command GET, got %s", doc.Command)
	}

	if reg.Get("get") == nil {
		t.Error("Get should be case insensitive")
	}

	if reg.Get("NONEXISTENT_CMD_XYZ") != nil {
		t.Error("unknown command should return nil")
	}
}

func TestRegistryIncludesApplicationCommands(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"EXIT", "HELP", "CLEAR"} {
		if reg.Get(name) == nil {
			t.Errorf("expected built-in application command %s in registry", name)
		}
	}
}

func TestRegistryGetCommandsPrefix(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}

	matches := reg.GetCommands("H")
	found := false
	for _, m := range matches {
		if m == "HGETALL" {
			found = true
		}
		if m[0] != 'H' {
			t.Errorf("GetCommands(%q) returned non-matching entry %q", "H", m)
		}
	}
	if !found {
		t.Error("expected HGETALL among commands starting with H")
	}
}
