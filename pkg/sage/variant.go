package sage

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Variant identifies one of the supported SAGE engine games.
type Variant uint8

const (
	VariantCNC3     Variant = iota // Command & Conquer 3: Tiberium Wars
	VariantKW                      // Command & Conquer 3: Kane's Wrath
	VariantRA3                     // Red Alert 3
	VariantRA3U                    // Red Alert 3: Uprising
	VariantCnC4Beta                // Command & Conquer 4 beta
	VariantCnC4                    // Command & Conquer 4: Tiberian Twilight
	numVariants
)

var variantTokens = [numVariants]string{
	VariantCNC3:     "CNC3",
	VariantKW:       "KW",
	VariantRA3:      "RA3",
	VariantRA3U:     "RA3U",
	VariantCnC4Beta: "CnC4Beta",
	VariantCnC4:     "CnC4",
}

var variantNames = [numVariants]string{
	VariantCNC3:     "Tiberium Wars",
	VariantKW:       "Kane's Wrath",
	VariantRA3:      "Red Alert 3",
	VariantRA3U:     "Red Alert 3: Uprising",
	VariantCnC4Beta: "Tiberian Twilight Beta",
	VariantCnC4:     "Tiberian Twilight",
}

// Variants returns every supported variant in detection order.
func Variants() []Variant {
	out := make([]Variant, 0, numVariants)
	for v := Variant(0); v < numVariants; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v < numVariants
}

// Token returns the file name token of the variant, e.g. "RA3".
func (v Variant) Token() string {
	if !v.Valid() {
		return LabelUnknown
	}
	return variantTokens[v]
}

func (v Variant) String() string {
	if !v.Valid() {
		return LabelUnknown
	}
	return variantNames[v]
}

// MarshalJSON implements json.Marshaler for Variant.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Token())
}

func (v Variant) layout() *layout {
	return &layouts[v]
}

// ParseVariant matches a variant token case-insensitively.
func ParseVariant(token string) (Variant, error) {
	for v := Variant(0); v < numVariants; v++ {
		if strings.EqualFold(token, variantTokens[v]) {
			return v, nil
		}
	}
	return 0, newUnsupportedVariantError(token)
}

// DetectVariant extracts the variant token from a replay file name of the
// form "<anything>.<token>Replay" and matches it case-insensitively.
func DetectVariant(filename string) (Variant, error) {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if len(ext) <= len(ReplaySuffix)+1 || !strings.EqualFold(ext[len(ext)-len(ReplaySuffix):], ReplaySuffix) {
		return 0, newUnsupportedVariantError(base)
	}
	token := ext[1 : len(ext)-len(ReplaySuffix)]
	v, err := ParseVariant(token)
	if err != nil {
		return 0, newUnsupportedVariantError(base)
	}
	return v, nil
}
