/*
Package testdata provides access to the ink fixtures of this module.

Fixtures are ink files (see package inkfile) located in sub-directory
"ink". They contain characters written with strokes simple enough for the
expected recognition result to be derived by hand.
*/
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// InkReader returns a reader for the given ink fixture file.
func InkReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(InkPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// InkPath returns the path of the given ink fixture file.
func InkPath(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "ink", file)
}
