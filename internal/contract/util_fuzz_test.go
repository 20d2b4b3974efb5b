package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateLabel fuzzes TruncateLabel with random labels and widths.
func FuzzTruncateLabel(f *testing.F) {
	seeds := []struct {
		label string
		width int
	}{
		{"Checkout redesign", 10},
		{"", 5},
		{"Zahlungsübersicht", 8},
		{"x", -1},
		{"very long milestone label that keeps going", 4},
	}
	for _, seed := range seeds {
		f.Add(seed.label, seed.width)
	}

	f.Fuzz(func(t *testing.T, label string, width int) {
		got := TruncateLabel(label, width)
		if width > 3 && utf8.RuneCountInString(got) > width {
			t.Fatalf("label %q exceeds width %d", got, width)
		}
	})
}

// FuzzParseList fuzzes ParseList with random flag values.
func FuzzParseList(f *testing.F) {
	for _, seed := range []string{"", "a,b", " , ,", "Onboarding, Checkout ,Refunds"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		for _, item := range ParseList(s) {
			if item == "" {
				t.Fatal("empty item")
			}
		}
	})
}
