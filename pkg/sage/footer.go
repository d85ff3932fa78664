package sage

import (
	"bytes"
	"encoding/binary"
	"io"
)

// readFooter reads the match length from the trailing window of the replay.
// It returns nil when the footer is missing or the length rounds down to
// zero seconds.
func readFooter(c *Cursor) *uint32 {
	back := int64(FooterWindow)
	if int64(c.Len()) < back {
		back = int64(c.Len())
	}
	if _, err := c.Seek(-back, io.SeekEnd); err != nil {
		return nil
	}
	window, err := c.Next(int(back))
	if err != nil {
		return nil
	}
	idx := bytes.Index(window, FooterMarker)
	if idx < 0 {
		return nil
	}
	at := idx + len(FooterMarker)
	if at+4 > len(window) {
		return nil
	}
	return durationFromTicks(binary.LittleEndian.Uint32(window[at:]))
}

// durationFromTicks converts footer ticks to whole seconds. Zero seconds
// means the length is not available.
func durationFromTicks(ticks uint32) *uint32 {
	secs := ticks / TicksPerSecond
	if secs == 0 {
		return nil
	}
	return &secs
}
