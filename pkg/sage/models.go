package sage

import (
	"encoding/json"
	"strconv"
	"time"
)

// GameType classifies how a match was hosted.
type GameType uint8

const (
	GameTypeUnknown   GameType = 0
	GameTypeOffline   GameType = 1
	GameTypeLAN       GameType = 2
	GameTypeUnranked  GameType = 3
	GameTypeRanked1v1 GameType = 4
	GameTypeRanked2v2 GameType = 5
	GameTypeClan1v1   GameType = 6
	GameTypeClan2v2   GameType = 7
	// GameTypeObjective is Tiberian Twilight's domination mode. Its rules
	// carry one extra leading field.
	GameTypeObjective GameType = 18
)

func (g GameType) String() string {
	switch g {
	case GameTypeOffline:
		return "Offline, Gefecht"
	case GameTypeLAN:
		return "Offline, LAN"
	case GameTypeUnranked:
		return "Online, Unranked"
	case GameTypeRanked1v1:
		return "Online, Ranked, 1 vs. 1"
	case GameTypeRanked2v2:
		return "Online, Ranked, 2 vs. 2"
	case GameTypeClan1v1:
		return "Online, Clan, 1 vs. 1"
	case GameTypeClan2v2:
		return "Online, Clan, 2 vs. 2"
	case GameTypeObjective:
		return "Online, Herrschaft"
	default:
		return LabelUnknown
	}
}

// MarshalJSON implements json.Marshaler for GameType.
func (g GameType) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// gameTypeFromCode maps the numeric game type code of the rules block.
func gameTypeFromCode(s string) GameType {
	switch s {
	case "1", "2", "3", "4", "5", "6", "7":
		return GameType(s[0] - '0')
	case "18", "23":
		return GameTypeObjective
	default:
		return GameTypeUnknown
	}
}

// PlayerKind is the slot tag of a roster token.
type PlayerKind uint8

const (
	PlayerUnknown PlayerKind = iota
	PlayerHuman
	PlayerComputer
	PlayerEmpty
)

func (k PlayerKind) String() string {
	switch k {
	case PlayerHuman:
		return "Human"
	case PlayerComputer:
		return "Computer"
	case PlayerEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler for PlayerKind.
func (k PlayerKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Role tells playing humans apart from observers and commentators.
type Role uint8

const (
	RolePlayer Role = iota
	RoleObserver
	RoleCommentator
)

func (r Role) String() string {
	switch r {
	case RoleObserver:
		return "Zuschauer"
	case RoleCommentator:
		return "Kommentator"
	default:
		return "Spieler"
	}
}

// MarshalJSON implements json.Marshaler for Role.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// MatchType tells automatch games apart from custom ones.
type MatchType uint8

const (
	MatchCustom MatchType = iota
	MatchAutomatch
)

func (m MatchType) String() string {
	if m == MatchAutomatch {
		return "Automatch"
	}
	return "Eigenes Match"
}

// MarshalJSON implements json.Marshaler for MatchType.
func (m MatchType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// PlayerRecord is one occupied roster slot. Kind decides which fields are
// set: Name, IP, Clan and Role belong to humans, Difficulty and AIType to
// computers. Unknown slots only carry Slot, Kind and Raw.
type PlayerRecord struct {
	Slot       int        `json:"slot"`
	Kind       PlayerKind `json:"kind"`
	Role       Role       `json:"role"`
	Name       string     `json:"name,omitempty"`
	IP         string     `json:"ip,omitempty"`
	Color      string     `json:"color,omitempty"`
	Faction    string     `json:"faction,omitempty"`
	Position   int        `json:"position"` // 1-based, 0 = random
	Team       int        `json:"team"`     // 1-based, 0 = none
	Handicap   *int       `json:"handicap,omitempty"`
	Difficulty string     `json:"difficulty,omitempty"`
	AIType     string     `json:"ai_type,omitempty"`
	Clan       string     `json:"clan,omitempty"`
	Raw        string     `json:"-"`
}

// PositionLabel returns the start position, or "Zufällig" when random.
func (p *PlayerRecord) PositionLabel() string {
	if p.Position == 0 {
		return LabelRandomAI
	}
	return strconv.Itoa(p.Position)
}

// TeamLabel returns the team number, or "-" without a team.
func (p *PlayerRecord) TeamLabel() string {
	if p.Team == 0 {
		return "-"
	}
	return strconv.Itoa(p.Team)
}

// HandicapLabel returns the handicap in percent, or LabelNotApplicable.
func (p *PlayerRecord) HandicapLabel() string {
	if p.Handicap == nil {
		return LabelNotApplicable
	}
	return strconv.Itoa(*p.Handicap) + "%"
}

// RulesExtension holds the objective-mode rules of Tiberian Twilight 1.02
// and later.
type RulesExtension struct {
	TimeLimit     int    `json:"time_limit"` // seconds
	Effectiveness string `json:"effectiveness"`
	WinPoints     int    `json:"win_points"`
	RevealMap     bool   `json:"reveal_map"`
	AimPoints     int    `json:"aim_points"`  // multiplier
	KillPoints    int    `json:"kill_points"` // multiplier
}

// MatchRules contains the decoded rules block.
type MatchRules struct {
	GameType        GameType `json:"game_type"`
	GameSpeed       int      `json:"game_speed"` // percent
	StartingCash    int      `json:"starting_cash"`
	BattleCast      bool     `json:"battlecast"`
	VoIP            bool     `json:"voip"`
	BattleCastDelay int      `json:"battlecast_delay"` // minutes
	RandomCrates    bool     `json:"random_crates"`
	// Reserved holds the undecoded tokens following the random crates flag.
	Reserved  []string        `json:"reserved,omitempty"`
	Extension *RulesExtension `json:"extension,omitempty"`
}

// ReplayMetadata is the result of a successful decode.
type ReplayMetadata struct {
	FileName      string         `json:"file"`
	Size          int64          `json:"size"`
	Variant       Variant        `json:"variant"`
	GameName      string         `json:"name"`
	Description   string         `json:"description"`
	MapName       string         `json:"map_name"`
	MapPicture    string         `json:"map_picture"`
	HasMapPicture bool           `json:"has_map_picture"`
	MapFile       string         `json:"map_file"`
	Official      bool           `json:"official"`
	Timestamp     uint32         `json:"timestamp"`
	DurationSec   *uint32        `json:"duration"`
	Version       string         `json:"version"`
	MatchType     MatchType      `json:"match_type"`
	Rules         MatchRules     `json:"rules"`
	Players       []PlayerRecord `json:"players"`
}

// Time returns the creation time of the replay in UTC.
func (r *ReplayMetadata) Time() time.Time {
	return time.Unix(int64(r.Timestamp), 0).UTC()
}

// Duration returns the match length, or zero when not available.
func (r *ReplayMetadata) Duration() time.Duration {
	if r.DurationSec == nil {
		return 0
	}
	return time.Duration(*r.DurationSec) * time.Second
}

// Humans returns the human players in slot order.
func (r *ReplayMetadata) Humans() []PlayerRecord {
	return r.playersOf(PlayerHuman)
}

// Computers returns the AI players in slot order.
func (r *ReplayMetadata) Computers() []PlayerRecord {
	return r.playersOf(PlayerComputer)
}

func (r *ReplayMetadata) playersOf(kind PlayerKind) []PlayerRecord {
	out := make([]PlayerRecord, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// GetPlayerByName returns the human player with the given name.
func (r *ReplayMetadata) GetPlayerByName(name string) *PlayerRecord {
	for i := range r.Players {
		if r.Players[i].Kind == PlayerHuman && r.Players[i].Name == name {
			return &r.Players[i]
		}
	}
	return nil
}

// ToJSON exports the metadata to JSON bytes.
func (r *ReplayMetadata) ToJSON(indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
