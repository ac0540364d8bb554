package theme

import "testing"

func TestBuiltinThemesRegistered(t *testing.T) {
	names := Available()
	want := []string{"catppuccin", "dracula", "github", "nord"}
	if len(names) != len(want) {
		t.Fatalf("expected %d themes, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected %q at position %d, got %q", name, i, names[i])
		}
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("github") })

	if !SetTheme("dracula") {
		t.Fatal("expected SetTheme to find dracula")
	}
	if CurrentName() != "dracula" {
		t.Errorf("expected current theme dracula, got %q", CurrentName())
	}
	if Current() == nil {
		t.Error("expected non-nil active theme")
	}

	if SetTheme("does-not-exist") {
		t.Error("expected SetTheme to reject unknown name")
	}
	if CurrentName() != "dracula" {
		t.Errorf("unknown name must not change the active theme, got %q", CurrentName())
	}
}

func TestCycleTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("github") })

	SetTheme("github")
	seen := map[string]bool{"github": true}
	for i := 0; i < len(Available())-1; i++ {
		seen[CycleTheme()] = true
	}
	if len(seen) != len(Available()) {
		t.Errorf("expected cycling to visit every theme once, saw %v", seen)
	}
	if next := CycleTheme(); next != "github" {
		t.Errorf("expected cycle to wrap around to github, got %q", next)
	}
}
