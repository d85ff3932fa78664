package sage

import (
	"encoding/hex"
	"net"
	"strings"
)

// parseRoster decodes the roster sub-field ("S=<slot>:<slot>:...:") into
// player records and reports the match type.
//
// Slots are numbered by their position in the roster, so dropped slots leave
// gaps. Empty slots and the stale "post commentator" slot are dropped. The match
// type follows the last human slot; without one it is a custom match.
func parseRoster(field string, v Variant) ([]PlayerRecord, MatchType) {
	players := make([]PlayerRecord, 0, 8)
	matchType := MatchCustom
	if len(field) < rosterPrefixLen+rosterSuffixLen {
		return players, matchType
	}
	tokens := strings.Split(field[rosterPrefixLen:len(field)-rosterSuffixLen], ":")

	for i, tok := range tokens {
		fields := rosterFields(strings.Split(tok, ","))
		if fields.at(0) == commentatorCorpse {
			continue
		}
		slot := i + 1

		switch slotKind(tok) {
		case PlayerHuman:
			p, automatch := parseHuman(fields, v)
			p.Slot, p.Raw = slot, tok
			if automatch {
				matchType = MatchAutomatch
			} else {
				matchType = MatchCustom
			}
			players = append(players, p)
		case PlayerComputer:
			p := parseComputer(fields, v)
			p.Slot, p.Raw = slot, tok
			players = append(players, p)
		case PlayerEmpty:
			continue
		case PlayerUnknown:
			players = append(players, PlayerRecord{Slot: slot, Kind: PlayerUnknown, Raw: tok})
		}
	}
	return players, matchType
}

func slotKind(tok string) PlayerKind {
	if tok == "" {
		return PlayerUnknown
	}
	switch tok[0] {
	case tagHuman:
		return PlayerHuman
	case tagComputer:
		return PlayerComputer
	case tagEmpty:
		return PlayerEmpty
	default:
		return PlayerUnknown
	}
}

// rosterFields gives positional access to a roster token; missing or
// unused (negative index) fields read as "".
type rosterFields []string

func (f rosterFields) at(i int) string {
	if i < 0 || i >= len(f) {
		return ""
	}
	return f[i]
}

// parseHuman decodes a human slot.
//
// Human slot format (Tiberium Wars order):
//   - 0: "H" + player name
//   - 1: IP address as 8 hex digits, "0" offline
//   - 3: match type, "FT" for automatch
//   - 4: color
//   - 5: faction
//   - 6: start position
//   - 7: team
//   - 8: handicap
//   - 11: clan tag
//
// Tiberian Twilight swaps faction and start position, moves the team to 8
// and has no handicap.
func parseHuman(f rosterFields, v Variant) (PlayerRecord, bool) {
	l := v.layout()
	hf := l.human
	faction := code(f.at(hf.faction))

	p := PlayerRecord{
		Kind:     PlayerHuman,
		Role:     roleOf(faction, v),
		Name:     strings.TrimPrefix(f.at(hf.name), string(tagHuman)),
		IP:       decodeIP(f.at(hf.ip)),
		Color:    Color(code(f.at(hf.color)), v),
		Faction:  Faction(faction, v),
		Position: slotNumber(f.at(hf.position)),
		Team:     slotNumber(f.at(hf.team)),
		Clan:     f.at(hf.clan),
	}
	if hf.handicap >= 0 {
		h := 0
		if s := f.at(hf.handicap); s != randomCode {
			h = intval(s)
		}
		p.Handicap = &h
	}
	if l.zeroClan && p.Clan == "0" {
		p.Clan = ""
	}
	return p, f.at(hf.matchType) == automatchTag
}

// parseComputer decodes a computer slot.
//
// Computer slot format (Tiberium Wars order):
//   - 0: difficulty tag, CE/CM/CH/CB
//   - 1: color
//   - 2: faction
//   - 3: start position
//   - 4: team
//   - 5: handicap
//   - 6: AI personality
func parseComputer(f rosterFields, v Variant) PlayerRecord {
	cf := v.layout().computer
	faction := code(f.at(cf.faction))

	p := PlayerRecord{
		Kind:       PlayerComputer,
		Difficulty: Difficulty(f.at(cf.difficulty), v),
		Color:      Color(code(f.at(cf.color)), v),
		Faction:    Faction(faction, v),
		Position:   slotNumber(f.at(cf.position)),
		Team:       slotNumber(f.at(cf.team)),
		AIType:     AIType(code(f.at(cf.aiType)), faction, v),
	}
	if cf.handicap >= 0 {
		h := intval(f.at(cf.handicap))
		p.Handicap = &h
	}
	return p
}

// slotNumber converts a 0-based start position or team to 1-based; "-1"
// (random or no team) becomes 0.
func slotNumber(s string) int {
	if s == randomCode {
		return 0
	}
	return intval(s) + 1
}

// decodeIP turns the 8 hex digit form into a dotted quad. Offline games and
// malformed values yield "".
func decodeIP(s string) string {
	if s == offlineIP || len(s) != 2*net.IPv4len {
		return ""
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return ""
	}
	return net.IPv4(b[0], b[1], b[2], b[3]).String()
}
