package textutil

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "smith", 5},
		{"b empty", "smith", "", 5},
		{"identical", "smith", "smith", 0},
		{"single deletion", "smith", "smth", 1},
		{"single substitution", "smith", "smyth", 1},
		{"single insertion", "smith", "smiith", 1},
		{"kitten sitting", "kitten", "sitting", 3},
		{"unrelated", "smith", "jones", 5},
		{"unicode runes", "müller", "muller", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"smith", "smth"},
		{"kitten", "sitting"},
		{"mayor", "maypr"},
	}
	for _, pair := range pairs {
		ab := Levenshtein(pair[0], pair[1])
		ba := Levenshtein(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Levenshtein not symmetric for %q/%q: %d vs %d", pair[0], pair[1], ab, ba)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"clean", "city-council-2024-01-09", "city-council-2024-01-09"},
		{"slashes and colons", "council/meeting: part 1", "council-meeting- part 1"},
		{"removed characters", `what?"<>|`, "what"},
		{"trimmed", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
