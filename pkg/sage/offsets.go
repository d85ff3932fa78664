package sage

import (
	"fmt"
	"io"
)

// readTimestamp reads the creation timestamp that sits at a fixed distance
// before the settings marker, then moves c to the start of the settings
// block. c must be just past the marker.
func readTimestamp(c *Cursor, l *layout) (uint32, error) {
	from := c.Position()
	if _, err := c.Seek(-l.timestampBack, io.SeekCurrent); err != nil {
		return 0, newTruncatedHeaderError(
			fmt.Sprintf("timestamp %d bytes before settings marker", l.timestampBack), from,
		)
	}
	ts, err := c.Uint32()
	if err != nil {
		return 0, newTruncatedHeaderError("timestamp truncated", c.Position())
	}
	if _, err := c.Seek(l.settingsForward, io.SeekCurrent); err != nil {
		return 0, newTruncatedHeaderError("settings block offset", c.Position())
	}
	return ts, nil
}
