package logo

import (
	"testing"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dejavu sans", "Dejavu Sans"},
		{"noto sans mono", "Noto Sans Mono"},
		{"Arial", "Arial"},
		{"  spaced  out ", "Spaced Out"},
	}

	for _, test := range tests {
		if got := titleCase(test.in); got != test.want {
			t.Errorf("titleCase(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestIsFontFile(t *testing.T) {
	valid := []string{"a.ttf", "b.otf", "c.TTF", "/usr/share/fonts/d.OtF"}
	invalid := []string{"a.ttc", "b.woff2", "readme.txt", "noext"}

	for _, path := range valid {
		if !isFontFile(path) {
			t.Errorf("expected %q to be a font file", path)
		}
	}

	for _, path := range invalid {
		if isFontFile(path) {
			t.Errorf("expected %q to not be a font file", path)
		}
	}
}

func TestPickDefaultFont(t *testing.T) {
	entries := []FontEntry{
		{Name: "Zilla Slab", Path: "/fonts/zilla.ttf"},
		{Name: "DejaVu Sans", Path: "/fonts/dejavu.ttf"},
		{Name: "Comic Neue", Path: "/fonts/comic.ttf"},
	}

	if got := pickDefaultFont(entries); got != "/fonts/dejavu.ttf" {
		t.Errorf("expected the preferred family to win, got %q", got)
	}

	noPreferred := []FontEntry{
		{Name: "Zilla Slab", Path: "/fonts/zilla.ttf"},
		{Name: "Comic Neue", Path: "/fonts/comic.ttf"},
	}

	if got := pickDefaultFont(noPreferred); got != "/fonts/zilla.ttf" {
		t.Errorf("expected the first entry as fallback, got %q", got)
	}
}

func TestFontCatalogLookup(t *testing.T) {
	fc := FontCatalog{
		Entries: []FontEntry{
			{Name: "Alpha", Path: "/fonts/alpha.ttf"},
			{Name: "Beta", Path: "/fonts/beta.ttf"},
		},
		defaultPath: "/fonts/alpha.ttf",
	}

	names := fc.Names()

	if len(names) != 3 || names[0] != DefaultFontName {
		t.Fatalf("expected Default plus two entries, got %v", names)
	}

	if path, ok := fc.PathByName("Beta"); !ok || path != "/fonts/beta.ttf" {
		t.Errorf("lookup of Beta failed, got %q %v", path, ok)
	}

	if path, ok := fc.PathByName(DefaultFontName); !ok || path != "/fonts/alpha.ttf" {
		t.Errorf("lookup of Default failed, got %q %v", path, ok)
	}

	if path, ok := fc.PathByName(""); !ok || path != "/fonts/alpha.ttf" {
		t.Errorf("empty name should resolve to the default, got %q %v", path, ok)
	}

	if _, ok := fc.PathByName("Gamma"); ok {
		t.Errorf("lookup of a missing font should fail")
	}
}

func TestFontListIndex(t *testing.T) {
	names := []string{"Default", "Alpha", "Beta"}

	if got := fontListIndex(names, "Beta"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	// unknown names land on the first entry
	if got := fontListIndex(names, "Gamma"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
