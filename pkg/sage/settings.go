package sage

import (
	"fmt"
	"strings"
)

// settingsBlock is the decoded content of the "M=" settings string.
type settingsBlock struct {
	MapFile   string
	Rules     MatchRules
	Players   []PlayerRecord
	MatchType MatchType
}

// parseSettings decodes the raw settings block, without its NUL terminator.
//
// After trimming a 3 byte prefix and a 1 byte suffix the block is a
// ";"-separated list of sub-fields:
//   - 0: map file name
//   - 7: rules, space separated
//   - 8: roster, ":"-separated (10 when the variant carries two extra
//     sub-fields and the block is long enough)
func parseSettings(raw []byte, v Variant) (*settingsBlock, error) {
	if len(raw) < settingsPrefixLen+settingsSuffixLen {
		return nil, newMalformedSettingsError(fmt.Sprintf("settings block too short: %d bytes", len(raw)))
	}
	fields := strings.Split(string(raw[settingsPrefixLen:len(raw)-settingsSuffixLen]), ";")

	l := v.layout()
	rosterIdx := subFieldRoster
	if l.extendedRoster && len(fields) > subFieldRosterExtended {
		rosterIdx = subFieldRosterExtended
	}
	if len(fields) <= rosterIdx {
		return nil, newMalformedSettingsError(
			fmt.Sprintf("settings block has %d sub-fields, need %d", len(fields), rosterIdx+1),
		)
	}

	rules, err := parseRules(fields[subFieldRules], v)
	if err != nil {
		return nil, err
	}
	players, matchType := parseRoster(fields[rosterIdx], v)

	return &settingsBlock{
		MapFile:   fields[subFieldMapFile],
		Rules:     *rules,
		Players:   players,
		MatchType: matchType,
	}, nil
}

// parseRules decodes the rules sub-field.
//
// Rules format:
//   - 0: game type code behind a variant-specific prefix ("RU=3")
//   - 1: game speed in percent
//   - 2: starting cash
//   - 3: BattleCast enabled
//   - 4: VoIP enabled
//   - 5: BattleCast delay in minutes
//   - 6: random crates
//   - 7+: reserved, plus the objective-mode extension where present
//
// An objective-mode game type prepends one field to the whole sequence; it is
// dropped before the positional reads.
func parseRules(field string, v Variant) (*MatchRules, error) {
	tokens := strings.Split(strings.TrimSpace(field), " ")
	l := v.layout()

	gameCode := ""
	if len(tokens[0]) > l.gameTypePrefix {
		gameCode = tokens[0][l.gameTypePrefix:]
	}
	gameType := gameTypeFromCode(gameCode)
	if gameType == GameTypeObjective {
		tokens = tokens[1:]
	}
	if len(tokens) < minRuleTokens {
		return nil, newMalformedSettingsError(
			fmt.Sprintf("rules have %d tokens, need %d", len(tokens), minRuleTokens),
		)
	}

	rules := &MatchRules{
		GameType:        gameType,
		GameSpeed:       intval(tokens[1]),
		StartingCash:    intval(tokens[2]),
		BattleCast:      tokens[3] == "1",
		VoIP:            tokens[4] == "1",
		BattleCastDelay: intval(tokens[5]),
		RandomCrates:    tokens[6] != "0",
	}
	if len(tokens) > minRuleTokens {
		rules.Reserved = append([]string(nil), tokens[minRuleTokens:]...)
	}
	if l.extension && len(tokens) > extensionProbe {
		rules.Extension = parseExtension(tokens)
	}
	return rules, nil
}

func parseExtension(tokens []string) *RulesExtension {
	at := func(i int) string {
		if i < len(tokens) {
			return tokens[i]
		}
		return ""
	}
	return &RulesExtension{
		TimeLimit:     intval(at(ruleTimeLimit)),
		Effectiveness: Effectiveness(code(at(ruleEffectiveness))),
		WinPoints:     intval(at(ruleWinPoints)),
		RevealMap:     at(ruleRevealMap) == "1",
		AimPoints:     intval(at(ruleAimPoints)),
		KillPoints:    intval(at(ruleKillPoints)),
	}
}

// isOfficialMap reports whether the map file lives in the official map tree.
func isOfficialMap(mapFile string) bool {
	return strings.Contains(strings.ToLower(mapFile), "official")
}
