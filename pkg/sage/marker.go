package sage

import (
	"bytes"
	"fmt"
)

// Marker is a literal anchor byte confirmed by a guard byte a fixed
// distance before it.
type Marker struct {
	Name      string
	Anchor    byte
	GuardBack int
	Guard     byte
}

var (
	// settingsMarker is the "M=" that opens the settings block.
	settingsMarker = Marker{Name: "M=", Anchor: '=', GuardBack: 1, Guard: 'M'}
	// versionMarker is the first dot of a version string that directly
	// follows a NUL, e.g. "\x001.12.".
	versionMarker = Marker{Name: `\x00<major>.`, Anchor: '.', GuardBack: 2, Guard: 0}
)

var zeroWord = []byte{0, 0, 0, 0}

// scanMarker reads forward one byte at a time until it finds m.Anchor with
// m.Guard sitting m.GuardBack bytes before it. A rejected candidate is never
// looked at again: the scan resumes with the byte after it. On success the
// cursor is left just past the anchor and the anchor's offset is returned.
func scanMarker(c *Cursor, m Marker) (int, error) {
	data := c.Bytes()
	for {
		b, err := c.ReadByte()
		if err != nil {
			return 0, newMarkerNotFoundError(m.Name, c.Position())
		}
		if b != m.Anchor {
			continue
		}
		at := c.Position() - 1
		if g := at - m.GuardBack; g >= 0 && data[g] == m.Guard {
			return at, nil
		}
	}
}

// skipToZeroWord reads 4-byte words until it has consumed one made of NUL
// bytes only.
func skipToZeroWord(c *Cursor) error {
	for {
		w, err := c.Next(len(zeroWord))
		if err != nil {
			return newMarkerNotFoundError(`\x00\x00\x00\x00`, c.Position())
		}
		if bytes.Equal(w, zeroWord) {
			return nil
		}
	}
}

// readTerminated reads bytes up to a NUL, consuming the NUL.
func readTerminated(c *Cursor, what string) ([]byte, error) {
	start := c.Position()
	data := c.Bytes()
	for {
		b, err := c.ReadByte()
		if err != nil {
			return nil, newMarkerNotFoundError(what+" terminator", c.Position())
		}
		if b == 0 {
			return data[start : c.Position()-1], nil
		}
	}
}

// readVersion locates the version marker and returns the version string
// from its major digit up to, not including, the second dot.
func readVersion(c *Cursor) (string, error) {
	at, err := scanMarker(c, versionMarker)
	if err != nil {
		return "", err
	}
	data := c.Bytes()
	start := at - 1
	// The minor part is at least one character long.
	for i := at + 2; i < len(data); i++ {
		if data[i] == '.' {
			c.pos = i + 1
			return string(data[start:i]), nil
		}
	}
	c.pos = len(data)
	return "", newMarkerNotFoundError(fmt.Sprintf("version %q terminator", data[start:at+1]), len(data))
}
