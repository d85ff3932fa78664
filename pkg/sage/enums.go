package sage

import (
	"math"
	"strconv"
)

// invalidCode stands in for a roster field that is not a number. No table
// maps it, so it always resolves to the fallback label.
const invalidCode = math.MinInt32

var factionTables = [numVariants]map[int]string{
	VariantCNC3: {
		-1: "Zufall", // human player, random faction
		1:  "Zufall", // AI player, random faction
		2:  "Zuschauer",
		3:  "Kommentator",
		6:  "GDI",
		7:  "Nod",
		8:  "Scrin",
	},
	VariantKW: {
		-1: "Zufall",
		1:  "Zufall",
		2:  "Zuschauer",
		3:  "Kommentator",
		6:  "GDI",
		7:  "Steel Talons",
		8:  "ZOCOM",
		9:  "Nod",
		10: "Schwarze Hand",
		11: "Kanes Juenger",
		12: "Scrin",
		13: "Reaper-17",
		14: "Traveler-59",
	},
	VariantRA3: {
		-1: "Zufall",
		7:  "Zufall",
		1:  "Zuschauer",
		2:  "Aufgehende Sonne",
		3:  "Kommentator",
		4:  "Alliierte",
		8:  "Sowjets",
	},
	VariantRA3U: {
		-1: "Zufall",
		8:  "Zufall",
		1:  "Zuschauer",
		3:  "Aufgehende Sonne",
		5:  "Alliierte",
		9:  "Sowjets",
	},
	VariantCnC4Beta: cnc4Factions,
	VariantCnC4:     cnc4Factions,
}

var cnc4Factions = map[int]string{
	-1: "Zufall",
	1:  "Beobachter",
	8:  "GDI",
	9:  "Nod",
}

// Faction returns the faction label of code, or LabelUnknown.
func Faction(code int, v Variant) string {
	if !v.Valid() {
		return LabelUnknown
	}
	if name, ok := factionTables[v][code]; ok {
		return name
	}
	return LabelUnknown
}

var sage3Colors = map[int]string{
	-1: LabelRandomColor,
	0:  "Blau",
	1:  "Gelb",
	2:  "Gruen",
	3:  "Orange",
	4:  "Rosa",
	5:  "Lila",
	6:  "Rot",
	7:  "Hellblau",
}

// Red Alert 3 has no pink; the following codes shift down by one.
var ra3Colors = map[int]string{
	-1: LabelRandomColor,
	0:  "Blau",
	1:  "Gelb",
	2:  "Gruen",
	3:  "Orange",
	4:  "Lila",
	5:  "Rot",
	6:  "Hellblau",
	7:  "Hellblau",
}

// Color returns the color label of code. Tiberian Twilight does not encode
// colors, so both of its variants yield LabelNotApplicable.
func Color(code int, v Variant) string {
	var table map[int]string
	switch v {
	case VariantCnC4, VariantCnC4Beta:
		return LabelNotApplicable
	case VariantRA3:
		table = ra3Colors
	case VariantCNC3, VariantKW, VariantRA3U:
		table = sage3Colors
	default:
		return LabelUnknown
	}
	if name, ok := table[code]; ok {
		return name
	}
	return LabelUnknown
}

type personalityKey struct {
	faction int
	aiType  int
}

var ra3Personalities = map[personalityKey]string{
	{2, 0}: "Shinzo",
	{2, 1}: "Kenji",
	{2, 2}: "Naomi",
	{4, 0}: "Warren",
	{4, 1}: "Giles",
	{4, 2}: "Lissette",
	{8, 0}: "Oleg",
	{8, 1}: "Moskvin",
	{8, 2}: "Zhana",
}

var ra3uPersonalities = map[personalityKey]string{
	{3, 0}: "Hinterhaltsexperte",
	{3, 1}: "Mecha-Kriegführung",
	{3, 2}: "Flottenkommandant",
	{5, 0}: "Direkter Angriff",
	{5, 1}: "Geschwaderführer",
	{5, 2}: "Special Forces",
	{9, 0}: "Schwere Panzer",
	{9, 1}: "Schockspezialist",
	{9, 2}: "Luftwaffenheldin",
}

var sage3Personalities = map[int]string{
	0: "Ausgewogen",
	1: "Rushen",
	2: "Einigeln",
	3: "Guerilla",
	4: "Dampfwalze",
}

var cnc4Personalities = map[int]string{
	0: "Offensive",
	1: "Unterstützung",
	2: "Defensive",
}

// AIType returns the AI personality label. Red Alert 3 personalities belong
// to a faction, so faction takes part in the lookup there; any other
// combination is a random personality. The beta of Tiberian Twilight has no
// AI players at all.
func AIType(code, faction int, v Variant) string {
	var (
		name string
		ok   bool
	)
	switch v {
	case VariantCNC3, VariantKW:
		if name, ok = sage3Personalities[code]; !ok {
			name = LabelRandomAI
		}
	case VariantRA3:
		if name, ok = ra3Personalities[personalityKey{faction, code}]; !ok {
			name = LabelRandomAI
		}
	case VariantRA3U:
		if name, ok = ra3uPersonalities[personalityKey{faction, code}]; !ok {
			name = LabelRandomAI
		}
	case VariantCnC4:
		if name, ok = cnc4Personalities[code]; !ok {
			name = LabelUnknown
		}
	default:
		name = LabelUnknown
	}
	return name
}

// Difficulty returns the label of a computer slot tag ("CE", "CM", "CH" or
// "CB").
func Difficulty(tag string, v Variant) string {
	verbose := v == VariantKW || v == VariantCnC4
	switch tag {
	case "CE":
		if verbose {
			return "Einfache KI"
		}
		return "Leicht"
	case "CM":
		if verbose {
			return "Mittlere KI"
		}
		return "Mittel"
	case "CH":
		if verbose {
			return "Schwierige KI"
		}
		return "Schwer"
	case "CB":
		switch v {
		case VariantCnC4:
			return "Brutale KI"
		case VariantKW:
			return "Erbarmungslose KI"
		}
		return "Brutal"
	default:
		return LabelUnknown
	}
}

// Effectiveness returns the label of an objective-mode effectiveness tier.
func Effectiveness(code int) string {
	switch code {
	case 1:
		return "Niedrig"
	case 2:
		return "Mittel"
	case 3:
		return "Hoch"
	case 4:
		return "Sehr hoch"
	default:
		return LabelUnknown
	}
}

// roleTables maps the faction codes that mark a non-playing human slot.
var roleTables = [numVariants]map[int]Role{
	VariantCNC3:     {2: RoleObserver, 3: RoleCommentator},
	VariantKW:       {2: RoleObserver, 3: RoleCommentator},
	VariantRA3:      {1: RoleObserver, 3: RoleCommentator},
	VariantRA3U:     {1: RoleObserver},
	VariantCnC4Beta: {1: RoleObserver},
	VariantCnC4:     {1: RoleObserver},
}

func roleOf(faction int, v Variant) Role {
	if !v.Valid() {
		return RolePlayer
	}
	if r, ok := roleTables[v][faction]; ok {
		return r
	}
	return RolePlayer
}

// code parses a numeric roster or rules field.
func code(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return invalidCode
	}
	return n
}

// intval parses the leading integer of s, yielding 0 when there is none.
func intval(s string) int {
	i, neg, n := 0, false, 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > math.MaxInt32/10 {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
