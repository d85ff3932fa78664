package sage

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// replayBuilder synthesises replay bytes for tests.
type replayBuilder struct {
	variant     Variant
	gameName    string
	description string
	mapName     string
	timestamp   uint32
	settings    string // everything between "M=" and the NUL terminator
	version     string // e.g. "1.09"
	ticks       uint32
	noFooter    bool
}

const (
	testTimestamp = 1199145600 // 2008-01-01 00:00:00 UTC
	testSettings  = "000maps/official/map_mp_2_feasel;MC=1A2B3C;MS=0;SD=1234;GSID=5678;GT=0;PC=-1;" +
		"RU=3 50 7500 1 0 10 0 -1 -1 -1 -1 -1;" +
		"S=HPlayerOne,0,0,FT,2,6,0,0,-1,0,0,CLAN:X:X:X:X:X:X:X:;"
)

func newTestBuilder(v Variant) replayBuilder {
	return replayBuilder{
		variant:     v,
		gameName:    "Skirmish",
		description: "test match",
		mapName:     "Tournament Island",
		timestamp:   testTimestamp,
		settings:    testSettings,
		version:     "1.09",
		ticks:       450,
	}
}

func utf16z(s string) []byte {
	var buf bytes.Buffer
	for _, u := range utf16.Encode([]rune(s)) {
		buf.WriteByte(byte(u))
		buf.WriteByte(byte(u >> 8))
	}
	buf.Write([]byte{0, 0})
	return buf.Bytes()
}

func (b replayBuilder) header() []byte {
	for _, fam := range headerFamilies {
		if fam.accepts(b.variant) {
			h := make([]byte, HeaderProbeSize+int(fam.skip))
			copy(h, fam.magic)
			return h
		}
	}
	return nil
}

func (b replayBuilder) build() []byte {
	var buf bytes.Buffer
	buf.Write(b.header())
	buf.Write(utf16z(b.gameName))
	buf.Write(utf16z(b.description))
	buf.Write(utf16z(b.mapName))
	// The zero word starts at the high byte of the map name terminator.
	buf.Write([]byte{0, 0, 0})

	// Player names and "CNC3RPL", ending with the timestamp at its fixed
	// distance before "M=".
	buf.WriteString("\x01\x02FakeMapID\x03Player\x04CNC3RPL\x05")
	back := int(layouts[b.variant].timestampBack)
	var ts [4]byte
	binary.LittleEndian.PutUint32(ts[:], b.timestamp)
	buf.Write(ts[:])
	buf.Write(bytes.Repeat([]byte{0x07}, back-6))
	buf.WriteString("M=")
	buf.WriteString(b.settings)
	buf.WriteByte(0)

	buf.WriteString("\x11\x22\x33")
	buf.WriteByte(0)
	buf.WriteString(b.version)
	buf.WriteString(".3174.42816")
	buf.WriteByte(0)
	buf.Write(bytes.Repeat([]byte{0x5A}, 100))

	if !b.noFooter {
		buf.WriteString("C&C3 REPLAY FOOTER")
		var ticks [4]byte
		binary.LittleEndian.PutUint32(ticks[:], b.ticks)
		buf.Write(ticks[:])
		buf.Write([]byte{0x02, 0x00, 0x00, 0x00, 0x01, 0x01})
	}
	return buf.Bytes()
}
