// Package mappics resolves map preview pictures on disk.
package mappics

import (
	"os"
	"path/filepath"
)

// Ext is the file extension of a map picture.
const Ext = ".png"

// Dir is a directory holding one "<picName>.png" per known map.
// The zero value knows no pictures.
type Dir string

// Exists reports whether a picture for picName is present. Names that
// would leave the directory never match.
func (d Dir) Exists(picName string) bool {
	if d == "" || picName == "" || filepath.Base(picName) != picName || picName == ".." {
		return false
	}
	fi, err := os.Stat(filepath.Join(string(d), picName+Ext))
	return err == nil && fi.Mode().IsRegular()
}

// Path returns the path a picture for picName would have.
func (d Dir) Path(picName string) string {
	return filepath.Join(string(d), picName+Ext)
}
