package verify

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "golang", "golang", 100},
		{"both empty", "", "", 100},
		{"one empty", "go", "", 0},
		{"disjoint", "a", "b", 0},
		{"close", "kitten", "sitting", 53},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Ratio(tc.a, tc.b); got != tc.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestPartialRatio(t *testing.T) {
	if got := PartialRatio("acme", "software engineer at acme corp"); got != 100 {
		t.Errorf("PartialRatio substring = %d, want 100", got)
	}
	if got := PartialRatio("", "anything"); got != 0 {
		t.Errorf("PartialRatio empty = %d, want 0", got)
	}
	if got := PartialRatio("zzz", "abcdef"); got > 50 {
		t.Errorf("PartialRatio disjoint = %d, want low", got)
	}
	// Symmetric in argument order.
	if PartialRatio("acme", "at acme corp") != PartialRatio("at acme corp", "acme") {
		t.Error("PartialRatio is not symmetric")
	}
}

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("Ada Lovelace", "Lovelace Ada"); got != 100 {
		t.Errorf("TokenSortRatio reordered = %d, want 100", got)
	}
	if got := TokenSortRatio("Ada Lovelace", "ADA LOVELACE"); got != 100 {
		t.Errorf("TokenSortRatio case = %d, want 100", got)
	}
	if got := TokenSortRatio("Ada Lovelace", "Grace Hopper"); got > 50 {
		t.Errorf("TokenSortRatio different names = %d, want low", got)
	}
}
