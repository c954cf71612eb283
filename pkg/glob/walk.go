package glob

import (
	"iter"
	"strings"

	"github.com/arthur-debert/globber/pkg/filesystem"
	"github.com/arthur-debert/globber/pkg/globber"
)

// walkFrame is one pending step of the depth-first search: a directory,
// the segment matchers still to be consumed under it, and whether it is
// the traversal root. Frames live only for the duration of one walk.
type walkFrame struct {
	dir      string
	matchers []*globber.Globber
	isRoot   bool
}

// Enumerate walks the directory tree under root depth-first and produces
// every path matching the pattern, in matcher-determined order: within a
// directory, ordered segments group entries by alternative rank, unordered
// segments keep the listing order, and a matching entry's subtree is fully
// explored before its next sibling.
//
// The sequence is lazy and finite; ranging over it again performs a fresh
// traversal with fresh directory listings. A root that does not exist or
// is not a directory yields an empty sequence. Directories that cannot be
// read mid-walk end only their own branch.
//
// Enumerate fails with an ErrIncompatibleRoot error, before touching the
// filesystem, when the pattern is absolute but root is not.
func (e *Engine) Enumerate(root string) (iter.Seq[string], error) {
	if err := e.compileSegments(); err != nil {
		return nil, err
	}
	if e.absolute && !e.spec.IsAbs(root) {
		return nil, e.incompatibleRoot(root)
	}
	return e.walk(root), nil
}

// Iter is the iterator view of the pattern under the current working
// directory, equivalent to Enumerate(".")
func (e *Engine) Iter() (iter.Seq[string], error) {
	return e.Enumerate(".")
}

func (e *Engine) walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		open := []walkFrame{{dir: root, matchers: e.segments, isRoot: true}}

		for len(open) > 0 {
			f := open[0]
			open = open[1:]

			// all segments consumed: the path itself is a result
			if len(f.matchers) == 0 {
				if !yield(f.dir) {
					return
				}
				continue
			}

			matcher, rest := f.matchers[0], f.matchers[1:]

			if !filesystem.IsDir(e.fsys, f.dir) {
				continue
			}
			names, err := filesystem.EntryNames(e.fsys, f.dir)
			if err != nil {
				e.log.Debug().Err(err).Str("dir", f.dir).Msg("abandoning unreadable branch")
				continue
			}

			// Listings never contain the self/parent pseudo-entries, but a
			// leading . or .. segment must still be able to match at the
			// root. Offering them only there keeps deeper frames from
			// descending into themselves.
			if f.isRoot {
				names = append([]string{".", ".."}, names...)
			}

			kept, err := matcher.Filter(names)
			if err != nil {
				e.log.Error().Err(err).Str("dir", f.dir).Msg("segment matcher failed mid-walk")
				continue
			}

			// depth-first: children go on the front, first match on top
			children := make([]walkFrame, 0, len(kept))
			for _, name := range kept {
				children = append(children, walkFrame{
					dir:      e.join(f.dir, name),
					matchers: rest,
				})
			}
			open = append(children, open...)
		}
	}
}

// join concatenates with the path spec's separator, without cleaning: results
// keep the exact segments the traversal matched
func (e *Engine) join(dir, name string) string {
	sep := e.spec.Separator()
	if dir == "" || strings.HasSuffix(dir, sep) {
		return dir + name
	}
	return dir + sep + name
}
