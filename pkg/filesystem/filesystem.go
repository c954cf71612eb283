package filesystem

import (
	"io/fs"
)

// FS is the read-only filesystem surface the glob engine consumes
type FS interface {
	// Stat returns file info for the named path
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the immediate entries of the named directory, in
	// whatever order the underlying filesystem reports them
	ReadDir(name string) ([]fs.DirEntry, error)
}

// IsDir reports whether the path exists and is a directory
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}

// EntryNames lists the entry names of a directory in listing order
func EntryNames(fsys FS, name string) ([]string, error) {
	entries, err := fsys.ReadDir(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
