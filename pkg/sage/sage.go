// Package sage decodes the metadata of replays written by games on the SAGE
// engine: Tiberium Wars, Kane's Wrath, Red Alert 3, Red Alert 3: Uprising
// and Tiberian Twilight (beta and release).
//
// The replay format is undocumented. Fields are located by scanning for a
// few literal markers and reading at fixed distances from them, with the
// distances taken from a per-variant table.
//
// Basic usage:
//
//	meta, err := sage.DecodeFile("match.KWReplay")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Map: %s\n", meta.MapName)
//	fmt.Printf("Length: %s\n", sage.FormatDuration(meta.DurationSec))
//
//	for _, p := range meta.Humans() {
//	    fmt.Printf("  %s (%s, %s)\n", p.Name, p.Faction, p.Color)
//	}
package sage

import (
	"strconv"
	"time"
)

// Decode is a convenience function to decode replay bytes.
func Decode(data []byte, filename string) (*ReplayMetadata, error) {
	return NewDecoder().Decode(data, filename)
}

// DecodeFile is a convenience function to decode a replay file.
func DecodeFile(path string) (*ReplayMetadata, error) {
	return NewDecoder().DecodeFile(path)
}

// FormatDuration formats a match length as MM:SS, or LabelNotApplicable when
// it is not available.
func FormatDuration(secs *uint32) string {
	if secs == nil || *secs == 0 {
		return LabelNotApplicable
	}
	m := *secs / 60
	s := *secs % 60
	return padInt(int(m)) + ":" + padInt(int(s))
}

// FormatTimeLimit formats an objective-mode time limit in seconds as
// H:MM:SS. Hours wrap at a day.
func FormatTimeLimit(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600 % 24
	return strconv.Itoa(h) + ":" + padInt(secs/60%60) + ":" + padInt(secs%60)
}

// FormatSize formats a byte count in whole KiB.
func FormatSize(size int64) string {
	return strconv.FormatInt((size+512)/1024, 10) + " KiB"
}

// FormatTimestamp formats a replay timestamp as DD.MM.YYYY, HH:MM:SS in loc.
func FormatTimestamp(ts uint32, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(int64(ts), 0).In(loc).Format("02.01.2006, 15:04:05")
}

func padInt(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
