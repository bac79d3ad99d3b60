package sanitize

import "testing"

func TestCleanTrimsAndCollapsesWhitespace(t *testing.T) {
	got := Clean("  Joe's   Pizza \t Palace  ")
	want := "Joe's Pizza Palace"
	if got != want {
		t.Fatalf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanRemovesControlCharacters(t *testing.T) {
	got := Clean("Piz\x00za\x07 Pl\x1bace\x7f")
	want := "Pizza Place"
	if got != want {
		t.Fatalf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanFoldsTabAndNewlineIntoSpaces(t *testing.T) {
	got := Clean("Thai\nBistro\tDowntown\r\n")
	want := "Thai Bistro Downtown"
	if got != want {
		t.Fatalf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"  spaced   out  ",
		"ctrl\x01chars\x02 here",
		"already clean",
		"",
		" \t\n ",
		"a \x01",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanBlankBecomesEmpty(t *testing.T) {
	if got := Clean("   \t  "); got != "" {
		t.Fatalf("Clean(blank) = %q, want empty", got)
	}
}

func TestCleanPtr(t *testing.T) {
	if got := CleanPtr(nil); got != nil {
		t.Fatalf("CleanPtr(nil) = %v, want nil", got)
	}

	raw := "  Queens  "
	got := CleanPtr(&raw)
	if got == nil || *got != "Queens" {
		t.Fatalf("CleanPtr() = %v, want Queens", got)
	}
}
