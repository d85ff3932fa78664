package sage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// MapPictureChecker reports whether a picture exists for a map. It is given
// the map name with single quotes removed.
type MapPictureChecker interface {
	Exists(picName string) bool
}

// Decoder decodes SAGE replays. It holds no per-call state, so one value can
// be shared by any number of goroutines.
type Decoder struct {
	pictures MapPictureChecker
	logger   zerolog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMapPictures sets the collaborator used for ReplayMetadata.HasMapPicture.
func WithMapPictures(c MapPictureChecker) Option {
	return func(d *Decoder) { d.pictures = c }
}

// WithLogger sets the logger that receives per-stage debug events.
// Decoders are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) { d.logger = l }
}

// NewDecoder creates a new decoder instance.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeFile decodes a replay file from disk. The variant comes from the
// file name.
func (d *Decoder) DecodeFile(path string) (*ReplayMetadata, error) {
	v, err := DetectVariant(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError(err)
	}
	return d.DecodeVariant(data, filepath.Base(path), v)
}

// DecodeReader reads r to the end and decodes it. The variant comes from
// filename.
func (d *Decoder) DecodeReader(r io.Reader, filename string) (*ReplayMetadata, error) {
	v, err := DetectVariant(filename)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newIOError(err)
	}
	return d.DecodeVariant(data, filename, v)
}

// Decode decodes the complete contents of a replay. The variant comes from
// filename.
func (d *Decoder) Decode(data []byte, filename string) (*ReplayMetadata, error) {
	v, err := DetectVariant(filename)
	if err != nil {
		return nil, err
	}
	return d.DecodeVariant(data, filename, v)
}

// DecodeVariant decodes data as a replay of variant v.
//
// The stages run strictly in order and any failure aborts the decode:
//  1. header magic
//  2. game name, description and map name
//  3. "M=" marker and the timestamp before it
//  4. settings block
//  5. version string
//  6. footer
func (d *Decoder) DecodeVariant(data []byte, filename string, v Variant) (*ReplayMetadata, error) {
	if !v.Valid() {
		return nil, newUnsupportedVariantError(v.Token())
	}
	c := NewCursor(data)
	l := v.layout()
	d.logger.Debug().Str("file", filename).Str("variant", v.Token()).Int("size", len(data)).Msg("decoding replay")

	// 1. Header
	if err := scanHeader(c, v); err != nil {
		return nil, atStage(err, StageHeader, v, c.Position())
	}

	// 2. Name block
	names, err := readNameBlock(c)
	if err != nil {
		return nil, atStage(err, StageStrings, v, c.Position())
	}
	d.logger.Debug().Str("name", names.GameName).Str("map", names.MapName).Int("offset", c.Position()).Msg("name block")

	// 3. Skip fake map id, player names and "CNC3RPL", then find "M="
	if err := skipToZeroWord(c); err != nil {
		return nil, atStage(err, StageTimestamp, v, c.Position())
	}
	marker, err := scanMarker(c, settingsMarker)
	if err != nil {
		return nil, atStage(err, StageTimestamp, v, c.Position())
	}
	timestamp, err := readTimestamp(c, l)
	if err != nil {
		return nil, atStage(err, StageTimestamp, v, c.Position())
	}
	d.logger.Debug().Int("marker", marker).Uint32("timestamp", timestamp).Send()

	// 4. Settings
	settingsStart := c.Position()
	raw, err := readTerminated(c, "settings block")
	if err != nil {
		return nil, atStage(err, StageSettings, v, c.Position())
	}
	settings, err := parseSettings(raw, v)
	if err != nil {
		return nil, atStage(err, StageSettings, v, settingsStart)
	}
	d.logger.Debug().Str("map_file", settings.MapFile).Int("players", len(settings.Players)).Msg("settings block")

	// 5. Version
	version, err := readVersion(c)
	if err != nil {
		return nil, atStage(err, StageVersion, v, c.Position())
	}
	if v == VariantCnC4Beta {
		version = strings.ReplaceAll(version, "1.", "Rev ")
	}

	// 6. Footer
	duration := readFooter(c)
	if duration == nil {
		d.logger.Debug().Str("file", filename).Msg("match length not available")
	}

	picName := strings.ReplaceAll(names.MapName, "'", "")
	meta := &ReplayMetadata{
		FileName:    filename,
		Size:        int64(len(data)),
		Variant:     v,
		GameName:    names.GameName,
		Description: names.Description,
		MapName:     names.MapName,
		MapPicture:  picName,
		MapFile:     settings.MapFile,
		Official:    isOfficialMap(settings.MapFile),
		Timestamp:   timestamp,
		DurationSec: duration,
		Version:     version,
		MatchType:   settings.MatchType,
		Rules:       settings.Rules,
		Players:     settings.Players,
	}
	if d.pictures != nil {
		meta.HasMapPicture = d.pictures.Exists(picName)
	}
	return meta, nil
}
