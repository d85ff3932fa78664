package sage

// Header magic sequences. Each one occupies the first bytes of a replay and
// identifies a header family shared by one or more variants.
var (
	MagicCNC3     = []byte("C&C3 REPLAY HEADER")
	MagicRA3      = []byte("RA3 REPLAY HEADER")
	MagicCnC4Beta = []byte("\x0b\x00\x00\x00CnC4Beta")
	MagicCnC4     = []byte("\x07\x00\x00\x00CnC4")
)

// FooterMarker is the literal searched for in the trailing window of a replay.
// Every supported header family ends its footer magic with it.
var FooterMarker = []byte("3 REPLAY FOOTER")

// Sizes and offsets that do not depend on the variant.
const (
	HeaderProbeSize = 18 // longest magic
	FooterWindow    = 70 // bytes read back from end of file
	TicksPerSecond  = 15
	ReplaySuffix    = "Replay"
)

// Settings block framing.
const (
	settingsPrefixLen = 3 // trimmed off the settings block
	settingsSuffixLen = 1
	rosterPrefixLen   = 2 // "S="
	rosterSuffixLen   = 1

	subFieldMapFile = 0
	subFieldRules   = 7
	subFieldRoster  = 8
	// Variants with two extra leading sub-fields move the roster here,
	// but only when the block is long enough to carry them.
	subFieldRosterExtended = 10

	minRuleTokens = 7
	// Rule token count above which the objective-mode extension is present.
	extensionProbe = 18
)

// Roster token tags and sentinels.
const (
	tagHuman    = 'H'
	tagComputer = 'C'
	tagEmpty    = 'X'

	commentatorCorpse = "Hpost Commentator"
	automatchTag      = "FT"
	offlineIP         = "0"
	randomCode        = "-1"
)

// Labels shared by every enumeration table.
const (
	LabelUnknown       = "UNKNOWN"
	LabelNotApplicable = "n/a"
	LabelRandomColor   = "Zufall"
	LabelRandomAI      = "Zufällig"
)

// headerFamily describes one header magic and the number of bytes to skip,
// counted from the end of the probe, before the game name starts.
type headerFamily struct {
	magic    []byte
	skip     int64
	variants []Variant
}

// headerFamilies is ordered most specific first so that no magic can shadow
// a longer one sharing its prefix.
var headerFamilies = []headerFamily{
	{magic: MagicCNC3, skip: 19, variants: []Variant{VariantCNC3, VariantKW}},
	{magic: MagicRA3, skip: 18, variants: []Variant{VariantRA3, VariantRA3U}},
	{magic: MagicCnC4Beta, skip: 5, variants: []Variant{VariantCnC4Beta}},
	{magic: MagicCnC4, skip: 9, variants: []Variant{VariantCnC4}},
}

// humanFields holds the positions of Human roster token fields.
// A negative index marks a field the variant does not encode.
type humanFields struct {
	name      int
	ip        int
	matchType int
	color     int
	faction   int
	position  int
	team      int
	handicap  int
	clan      int
}

// computerFields holds the positions of Computer roster token fields.
type computerFields struct {
	difficulty int
	color      int
	faction    int
	position   int
	team       int
	handicap   int
	aiType     int
}

// layout is the per-variant offset table driving every position-dependent
// read in the decoder.
type layout struct {
	// Bytes back from just past "M=" to the creation timestamp.
	timestampBack int64
	// Bytes forward from just past the timestamp to the settings block.
	settingsForward int64
	// Characters preceding the game type code in the first rules token.
	gameTypePrefix int
	// Settings block may carry two extra sub-fields before the roster.
	extendedRoster bool
	// Rules may carry the objective-mode extension.
	extension bool
	// A clan tag of "0" means no clan.
	zeroClan bool

	human    humanFields
	computer computerFields
}

var (
	sage3Human    = humanFields{name: 0, ip: 1, matchType: 3, color: 4, faction: 5, position: 6, team: 7, handicap: 8, clan: 11}
	sage3Computer = computerFields{difficulty: 0, color: 1, faction: 2, position: 3, team: 4, handicap: 5, aiType: 6}

	cnc4Human    = humanFields{name: 0, ip: 1, matchType: 3, color: 4, faction: 6, position: 5, team: 8, handicap: -1, clan: 11}
	cnc4Computer = computerFields{difficulty: 0, color: 1, faction: 3, position: 2, team: 5, handicap: -1, aiType: 6}
)

var layouts = [numVariants]layout{
	VariantCNC3: {
		timestampBack: 43, settingsForward: 39, gameTypePrefix: 3,
		human: sage3Human, computer: sage3Computer,
	},
	VariantKW: {
		timestampBack: 43, settingsForward: 39, gameTypePrefix: 3,
		human: sage3Human, computer: sage3Computer,
	},
	VariantRA3: {
		timestampBack: 41, settingsForward: 37, gameTypePrefix: 3,
		human: sage3Human, computer: sage3Computer,
	},
	VariantRA3U: {
		timestampBack: 41, settingsForward: 37, gameTypePrefix: 3,
		human: sage3Human, computer: sage3Computer,
	},
	// The beta has no AI players; computer slots keep the older layout.
	VariantCnC4Beta: {
		timestampBack: 47, settingsForward: 43, gameTypePrefix: 3,
		extendedRoster: true, zeroClan: true,
		human: cnc4Human, computer: sage3Computer,
	},
	VariantCnC4: {
		timestampBack: 47, settingsForward: 43, gameTypePrefix: 4,
		extendedRoster: true, extension: true, zeroClan: true,
		human: cnc4Human, computer: cnc4Computer,
	},
}

// Positions of the objective-mode extension fields within the rules
// sequence, after the leading game type token has been dropped.
const (
	ruleTimeLimit     = 10
	ruleEffectiveness = 17
	ruleWinPoints     = 18
	ruleRevealMap     = 20
	ruleAimPoints     = 21
	ruleKillPoints    = 22
)
