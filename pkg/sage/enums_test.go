package sage

import (
	"math"
	"testing"
)

func TestEnumTotality(t *testing.T) {
	codes := []int{math.MinInt32, math.MaxInt32, invalidCode}
	for c := -300; c <= 300; c++ {
		codes = append(codes, c)
	}
	for _, v := range append(Variants(), variantUndetected) {
		for _, c := range codes {
			if Faction(c, v) == "" {
				t.Fatalf("Faction(%d, %v) is empty", c, v)
			}
			if Color(c, v) == "" {
				t.Fatalf("Color(%d, %v) is empty", c, v)
			}
			for _, f := range []int{-1, 2, 3, 4, 5, 8, 9, c} {
				if AIType(c, f, v) == "" {
					t.Fatalf("AIType(%d, %d, %v) is empty", c, f, v)
				}
			}
		}
		for _, tag := range []string{"", "C", "CE", "CM", "CH", "CB", "CX", "ce", "H"} {
			if Difficulty(tag, v) == "" {
				t.Fatalf("Difficulty(%q, %v) is empty", tag, v)
			}
		}
	}
}

func TestFaction(t *testing.T) {
	tests := []struct {
		code    int
		variant Variant
		want    string
	}{
		{6, VariantCNC3, "GDI"},
		{7, VariantCNC3, "Nod"},
		{8, VariantCNC3, "Scrin"},
		{-1, VariantCNC3, "Zufall"},
		{9, VariantCNC3, LabelUnknown},
		{7, VariantKW, "Steel Talons"},
		{14, VariantKW, "Traveler-59"},
		{2, VariantRA3, "Aufgehende Sonne"},
		{7, VariantRA3, "Zufall"},
		{3, VariantRA3U, "Aufgehende Sonne"},
		{8, VariantRA3U, "Zufall"},
		{8, VariantCnC4, "GDI"},
		{1, VariantCnC4Beta, "Beobachter"},
		{6, VariantCnC4, LabelUnknown},
	}
	for _, tt := range tests {
		if got := Faction(tt.code, tt.variant); got != tt.want {
			t.Errorf("Faction(%d, %v) = %q, want %q", tt.code, tt.variant, got, tt.want)
		}
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		code    int
		variant Variant
		want    string
	}{
		{2, VariantCNC3, "Gruen"},
		{4, VariantKW, "Rosa"},
		{4, VariantRA3, "Lila"},
		{6, VariantRA3, "Hellblau"},
		{6, VariantRA3U, "Rot"},
		{-1, VariantRA3, LabelRandomColor},
		{8, VariantCNC3, LabelUnknown},
		{2, VariantCnC4, LabelNotApplicable},
		{99, VariantCnC4Beta, LabelNotApplicable},
	}
	for _, tt := range tests {
		if got := Color(tt.code, tt.variant); got != tt.want {
			t.Errorf("Color(%d, %v) = %q, want %q", tt.code, tt.variant, got, tt.want)
		}
	}
}

func TestAIType(t *testing.T) {
	tests := []struct {
		code, faction int
		variant       Variant
		want          string
	}{
		{1, 6, VariantCNC3, "Rushen"},
		{4, -1, VariantKW, "Dampfwalze"},
		{5, 6, VariantKW, LabelRandomAI},
		{0, 2, VariantRA3, "Shinzo"},
		{2, 8, VariantRA3, "Zhana"},
		{0, 3, VariantRA3, LabelRandomAI},
		{0, 3, VariantRA3U, "Hinterhaltsexperte"},
		{1, 9, VariantRA3U, "Schockspezialist"},
		{1, 8, VariantRA3U, LabelRandomAI},
		{1, 8, VariantCnC4, "Unterstützung"},
		{3, 8, VariantCnC4, LabelUnknown},
		{0, 8, VariantCnC4Beta, LabelUnknown},
	}
	for _, tt := range tests {
		if got := AIType(tt.code, tt.faction, tt.variant); got != tt.want {
			t.Errorf("AIType(%d, %d, %v) = %q, want %q", tt.code, tt.faction, tt.variant, got, tt.want)
		}
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		tag     string
		variant Variant
		want    string
	}{
		{"CE", VariantCNC3, "Leicht"},
		{"CE", VariantKW, "Einfache KI"},
		{"CM", VariantCnC4, "Mittlere KI"},
		{"CH", VariantRA3, "Schwer"},
		{"CB", VariantCnC4, "Brutale KI"},
		{"CB", VariantKW, "Erbarmungslose KI"},
		{"CB", VariantRA3U, "Brutal"},
		{"CX", VariantCNC3, LabelUnknown},
	}
	for _, tt := range tests {
		if got := Difficulty(tt.tag, tt.variant); got != tt.want {
			t.Errorf("Difficulty(%q, %v) = %q, want %q", tt.tag, tt.variant, got, tt.want)
		}
	}
}

func TestIntval(t *testing.T) {
	tests := map[string]int{
		"":      0,
		"42":    42,
		"-1":    -1,
		"+7":    7,
		"100%":  100,
		"abc":   0,
		"7500 ": 7500,
	}
	for in, want := range tests {
		if got := intval(in); got != want {
			t.Errorf("intval(%q) = %d, want %d", in, got, want)
		}
	}
	if code("x") != invalidCode || code("-1") != -1 {
		t.Errorf("code() mismatch")
	}
}
