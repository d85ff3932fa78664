package sage

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf16"
)

// scanHeader validates the header magic against the detected variant and
// positions c at the first byte of the game name.
//
// The probe is the first HeaderProbeSize bytes (fewer for a short file). Each
// family's skip count is taken from the end of the full probe, as a reader
// that always consumes HeaderProbeSize bytes would see it.
func scanHeader(c *Cursor, v Variant) error {
	if _, err := c.Seek(0, io.SeekStart); err != nil {
		return err
	}
	n := HeaderProbeSize
	if c.Len() < n {
		n = c.Len()
	}
	probe, err := c.Next(n)
	if err != nil {
		return newBadHeaderError(nil)
	}

	for _, fam := range headerFamilies {
		if !bytes.HasPrefix(probe, fam.magic) {
			continue
		}
		if !fam.accepts(v) {
			return newBadHeaderError(fam.magic)
		}
		if _, err := c.Seek(HeaderProbeSize+fam.skip, io.SeekStart); err != nil {
			return err
		}
		return nil
	}
	return newBadHeaderError(probe)
}

func (f *headerFamily) accepts(v Variant) bool {
	for _, fv := range f.variants {
		if fv == v {
			return true
		}
	}
	return false
}

// nameBlock holds the strings that follow the header.
type nameBlock struct {
	GameName    string
	Description string
	MapName     string
}

// readNameBlock reads the game name, match description and map name.
//
// The strings are UTF-16LE, each terminated by a zero code unit. The zero-word
// skip that follows is aligned to the high byte of the map name's
// terminator, so the cursor is left one byte short of the end of the block.
func readNameBlock(c *Cursor) (*nameBlock, error) {
	var nb nameBlock
	var err error
	if nb.GameName, err = readUTF16String(c); err != nil {
		return nil, err
	}
	if nb.Description, err = readUTF16String(c); err != nil {
		return nil, err
	}
	if nb.MapName, err = readUTF16String(c); err != nil {
		return nil, err
	}
	if _, err = c.Seek(-1, io.SeekCurrent); err != nil {
		return nil, err
	}
	return &nb, nil
}

// readUTF16String reads little-endian UTF-16 code units up to and including
// a zero unit.
func readUTF16String(c *Cursor) (string, error) {
	start := c.Position()
	units := make([]uint16, 0, 32)
	for {
		b, err := c.Next(2)
		if err != nil {
			return "", newTruncatedHeaderError(
				fmt.Sprintf("unterminated string starting at 0x%X", start), c.Position(),
			)
		}
		u := uint16(b[0]) | uint16(b[1])<<8
		if u == 0 {
			return string(utf16.Decode(units)), nil
		}
		units = append(units, u)
	}
}
