package detector

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FSReader provides filesystem operations abstracted over fs.FS
type FSReader struct {
	fsys fs.FS
	// rootName is the base name the walk root is matched under
	rootName string

	// OnSkip, if set, is called for every entry the walk could not resolve
	OnSkip func(path string, err error)
}

// NewFSReader creates a new FSReader for the given filesystem
func NewFSReader(fsys fs.FS) *FSReader {
	return &FSReader{fsys: fsys}
}

// NewDirReader creates an FSReader for a directory on disk. The directory's
// own name takes part in extension matching, so a root named "token.sol"
// counts as a .sol entry.
func NewDirReader(dir string) *FSReader {
	return &FSReader{
		fsys:     os.DirFS(dir),
		rootName: filepath.Base(filepath.Clean(dir)),
	}
}

// Has checks if anything exists at the given path
func (r *FSReader) Has(path string) bool {
	_, err := fs.Stat(r.fsys, path)
	return err == nil
}

// Walk returns every entry that could be resolved, in walk order, starting
// with the root itself as ".". Entries that fail are reported to OnSkip and
// left out; a directory that cannot be listed contributes nothing below it.
// Breaking out of the range loop stops the walk.
func (r *FSReader) Walk() iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if r.OnSkip != nil {
					r.OnSkip(p, err)
				}
				return nil
			}
			if !yield(p) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// ContainsExt checks if any entry has exactly the given extension.
// ext is given without the leading dot; the match is case-sensitive.
func (r *FSReader) ContainsExt(ext string) bool {
	for p := range r.Walk() {
		if got, ok := Ext(r.entryName(p)); ok && got == ext {
			return true
		}
	}
	return false
}

// entryName maps the walk root to the name it is matched under
func (r *FSReader) entryName(p string) string {
	if p == "." {
		return r.rootName
	}
	return p
}

// Ext returns the extension of the last element of p, without the dot.
// A name has an extension only if something precedes its last dot, so
// ".sol" has none while "a.sol" and "..sol" both have "sol".
func Ext(p string) (string, bool) {
	name := path.Base(p)
	if name == ".." {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}
