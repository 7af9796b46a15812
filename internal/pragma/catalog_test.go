package pragma

import "testing"

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()
	if !c.HasExtension("ScopedTypeVariables") {
		t.Fatal("builtin catalog is missing ScopedTypeVariables")
	}
	if c.HasExtension("NotAnExtension") {
		t.Fatal("unknown extension reported as known")
	}
	if len(c.Flags()) == 0 {
		t.Fatal("builtin catalog has no flags")
	}
}

func TestNewCatalogDedupsAndSorts(t *testing.T) {
	c := NewCatalog(
		[]string{"LambdaCase", "BangPatterns", "LambdaCase", ""},
		[]string{"-Wall", "-Wall", "--", ""},
	)
	exts := c.Extensions()
	if len(exts) != 2 || exts[0] != "BangPatterns" || exts[1] != "LambdaCase" {
		t.Fatalf("unexpected extensions %v", exts)
	}
	// "--" strips to nothing and is dropped from completion names.
	names := c.FlagNames()
	if len(names) != 1 || names[0] != "Wall" {
		t.Fatalf("unexpected flag names %v", names)
	}
}

func TestFlagSetNilReceiver(t *testing.T) {
	var fs *FlagSet
	if fs.ExtensionEnabled("LambdaCase") {
		t.Fatal("nil FlagSet must report nothing enabled")
	}
	fs = NewFlagSet([]string{"LambdaCase"})
	if !fs.ExtensionEnabled("LambdaCase") || fs.ExtensionEnabled("GADTs") {
		t.Fatal("FlagSet membership broken")
	}
}
