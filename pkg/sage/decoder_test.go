package sage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type pictureSet map[string]bool

func (p pictureSet) Exists(name string) bool { return p[name] }

func TestDecodeEndToEnd(t *testing.T) {
	data := newTestBuilder(VariantCNC3).build()
	meta, err := Decode(data, "final.CNC3Replay")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if meta.GameName != "Skirmish" || meta.Description != "test match" || meta.MapName != "Tournament Island" {
		t.Errorf("names = %q %q %q", meta.GameName, meta.Description, meta.MapName)
	}
	if meta.Variant != VariantCNC3 || meta.FileName != "final.CNC3Replay" || meta.Size != int64(len(data)) {
		t.Errorf("file info = %v %q %d", meta.Variant, meta.FileName, meta.Size)
	}
	if meta.Timestamp != testTimestamp || meta.Time().Year() != 2008 {
		t.Errorf("Timestamp = %d", meta.Timestamp)
	}
	if meta.Version != "1.09" {
		t.Errorf("Version = %q", meta.Version)
	}
	if !meta.Official || meta.MapFile != "maps/official/map_mp_2_feasel" {
		t.Errorf("map file %q official %v", meta.MapFile, meta.Official)
	}
	if meta.DurationSec == nil || *meta.DurationSec != 30 || FormatDuration(meta.DurationSec) != "00:30" {
		t.Errorf("DurationSec = %v", meta.DurationSec)
	}

	r := meta.Rules
	if r.GameType.String() != "Online, Unranked" || r.GameSpeed != 50 || r.StartingCash != 7500 ||
		!r.BattleCast || r.VoIP || r.BattleCastDelay != 10 || r.RandomCrates {
		t.Errorf("Rules = %+v", r)
	}
	if meta.MatchType != MatchAutomatch {
		t.Errorf("MatchType = %v", meta.MatchType)
	}

	if len(meta.Players) != 1 {
		t.Fatalf("got %d players, want 1", len(meta.Players))
	}
	p := meta.Players[0]
	if p.Kind != PlayerHuman || p.Name != "PlayerOne" || p.Color != "Gruen" || p.Faction != "GDI" ||
		p.Clan != "CLAN" || p.Slot != 1 || p.IP != "" {
		t.Errorf("player = %+v", p)
	}
	if meta.GetPlayerByName("PlayerOne") == nil || len(meta.Humans()) != 1 || len(meta.Computers()) != 0 {
		t.Error("player accessors mismatch")
	}
}

func TestDecodeAllVariants(t *testing.T) {
	for _, v := range Variants() {
		b := newTestBuilder(v)
		if v == VariantCnC4 {
			b.settings = strings.Replace(b.settings, "RU=3", "NRU=3", 1)
		}
		meta, err := NewDecoder().DecodeVariant(b.build(), "x", v)
		if err != nil {
			t.Errorf("%v: DecodeVariant() error = %v", v, err)
			continue
		}
		if meta.Timestamp != testTimestamp {
			t.Errorf("%v: Timestamp = %d", v, meta.Timestamp)
		}
		if meta.Rules.GameType != GameTypeUnranked {
			t.Errorf("%v: GameType = %v", v, meta.Rules.GameType)
		}
		if len(meta.Players) != 1 {
			t.Errorf("%v: %d players", v, len(meta.Players))
		}
	}
}

func TestDecodeBetaVersion(t *testing.T) {
	b := newTestBuilder(VariantCnC4Beta)
	b.version = "1.9"
	meta, err := NewDecoder().DecodeVariant(b.build(), "x.CnC4BetaReplay", VariantCnC4Beta)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Version != "Rev 9" {
		t.Errorf("Version = %q, want %q", meta.Version, "Rev 9")
	}
}

func TestDecodeDeterministic(t *testing.T) {
	data := newTestBuilder(VariantKW).build()
	a, err := Decode(data, "a.KWReplay")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode(append([]byte(nil), data...), "a.KWReplay")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("decoding the same bytes twice gave different results")
	}
	ja, _ := a.ToJSON(false)
	jb, _ := b.ToJSON(false)
	if !bytes.Equal(ja, jb) {
		t.Error("JSON output differs")
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := newTestBuilder(VariantRA3).build()
	versionEnd := bytes.Index(data, []byte("1.09.3174")) + len("1.09.")

	for n := 0; n < len(data); n++ {
		meta, err := Decode(data[:n], "cut.RA3Replay")
		if n >= versionEnd {
			if err != nil {
				t.Errorf("cut at %d: error = %v", n, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("cut at %d: decoded %+v", n, meta)
		}
		if !errors.Is(err, ErrMarkerNotFound) && !errors.Is(err, ErrTruncatedHeader) && !errors.Is(err, ErrBadHeader) {
			t.Errorf("cut at %d: unexpected error %v", n, err)
		}
		var de *DecodeError
		if !errors.As(err, &de) || de.Variant != VariantRA3 {
			t.Errorf("cut at %d: error %v carries no variant", n, err)
		}
		if meta != nil {
			t.Errorf("cut at %d: partial metadata returned", n)
		}
	}
}

func TestDecodeNoFooter(t *testing.T) {
	b := newTestBuilder(VariantCNC3)
	b.noFooter = true
	meta, err := Decode(b.build(), "x.CNC3Replay")
	if err != nil {
		t.Fatal(err)
	}
	if meta.DurationSec != nil || FormatDuration(meta.DurationSec) != LabelNotApplicable {
		t.Errorf("DurationSec = %v, want nil", meta.DurationSec)
	}

	b.noFooter = false
	b.ticks = 1
	meta, err = Decode(b.build(), "x.CNC3Replay")
	if err != nil {
		t.Fatal(err)
	}
	if meta.DurationSec != nil {
		t.Errorf("1 tick: DurationSec = %v, want nil", *meta.DurationSec)
	}
}

func TestDecodeErrors(t *testing.T) {
	good := newTestBuilder(VariantCNC3).build()

	malformed := newTestBuilder(VariantCNC3)
	malformed.settings = "000maps/x;RU=3 1 2;"
	malformedData := malformed.build()
	noMarker := good[:bytes.Index(good, []byte("M="))]

	tests := []struct {
		name     string
		data     []byte
		filename string
		want     error
		stage    Stage
		offset   int
	}{
		{"unsupported", good, "x.SC2Replay", ErrUnsupportedVariant, StageVariant, 0},
		{"variant mismatch", good, "x.RA3Replay", ErrBadHeader, StageHeader, 0},
		{"garbage", bytes.Repeat([]byte{0xFF}, 200), "x.CNC3Replay", ErrBadHeader, StageHeader, 0},
		{"malformed", malformedData, "x.CNC3Replay", ErrMalformedSettings, StageSettings,
			bytes.Index(malformedData, []byte("M=")) + 2},
		{"no marker", noMarker, "x.CNC3Replay", ErrMarkerNotFound, StageTimestamp, len(noMarker)},
		{"truncated strings", good[:HeaderProbeSize+19+3], "x.CNC3Replay", ErrTruncatedHeader, StageStrings, -1},
	}
	for _, tt := range tests {
		meta, err := Decode(tt.data, tt.filename)
		if meta != nil || !errors.Is(err, tt.want) {
			t.Errorf("%s: Decode() = %v, %v, want %v", tt.name, meta, err, tt.want)
			continue
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Errorf("%s: %T is not a *DecodeError", tt.name, err)
			continue
		}
		if de.Stage != tt.stage {
			t.Errorf("%s: stage = %v, want %v", tt.name, de.Stage, tt.stage)
		}
		if !strings.Contains(err.Error(), tt.stage.String()) {
			t.Errorf("%s: error %q does not name the stage", tt.name, err)
		}
		if de.Offset == nil {
			t.Errorf("%s: error carries no offset", tt.name)
			continue
		}
		if tt.offset >= 0 && *de.Offset != tt.offset {
			t.Errorf("%s: offset = %d, want %d", tt.name, *de.Offset, tt.offset)
		}
		if tt.stage != StageVariant && de.Variant != VariantCNC3 && de.Variant != VariantRA3 {
			t.Errorf("%s: variant = %v", tt.name, de.Variant)
		}
	}
}

func TestDecodeMapPicture(t *testing.T) {
	b := newTestBuilder(VariantKW)
	b.mapName = "Tournament Tower 'Grizzly'"
	d := NewDecoder(WithMapPictures(pictureSet{"Tournament Tower Grizzly": true}))
	meta, err := d.Decode(b.build(), "x.KWReplay")
	if err != nil {
		t.Fatal(err)
	}
	if meta.MapPicture != "Tournament Tower Grizzly" || !meta.HasMapPicture {
		t.Errorf("map picture %q present %v", meta.MapPicture, meta.HasMapPicture)
	}

	meta, err = NewDecoder().Decode(b.build(), "x.KWReplay")
	if err != nil || meta.HasMapPicture {
		t.Errorf("without checker: %v, %v", meta, err)
	}
}

func TestDecodeFileAndReader(t *testing.T) {
	data := newTestBuilder(VariantRA3U).build()
	path := filepath.Join(t.TempDir(), "match.RA3UReplay")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	meta, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if meta.FileName != "match.RA3UReplay" || meta.Variant != VariantRA3U {
		t.Errorf("DecodeFile() = %q %v", meta.FileName, meta.Variant)
	}

	meta, err = NewDecoder().DecodeReader(bytes.NewReader(data), "match.RA3UReplay")
	if err != nil || meta.Variant != VariantRA3U {
		t.Errorf("DecodeReader() = %v, %v", meta, err)
	}

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.RA3UReplay"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestDecodeLogger(t *testing.T) {
	if lvl := NewDecoder().logger.GetLevel(); lvl != zerolog.Disabled {
		t.Errorf("default logger level = %v, want disabled", lvl)
	}

	var buf bytes.Buffer
	d := NewDecoder(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	if _, err := d.Decode(newTestBuilder(VariantKW).build(), "x.KWReplay"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"decoding replay", `"variant":"KW"`, "settings block"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log lacks %q:\n%s", want, buf.String())
		}
	}
}
