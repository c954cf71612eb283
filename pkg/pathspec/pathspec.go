// Package pathspec defines the path-splitting strategy the glob engine
// uses to decompose patterns and candidate paths consistently. A PathSpec
// answers three questions: what separates segments, whether a path is
// absolute, and how a path divides into a volume prefix plus segments.
//
// The posix and windows specs are both usable on any platform, which keeps
// path-matching tests deterministic; Native picks the one matching the
// host.
package pathspec

import (
	"runtime"
	"strings"
)

// PathSpec decomposes paths for segment-wise matching
type PathSpec interface {
	// Separator returns the directory separator
	Separator() string

	// IsAbs reports whether the path is absolute
	IsAbs(path string) bool

	// Split returns the volume-or-root prefix (empty for relative paths)
	// and the ordered, separator-free segments of the path
	Split(path string) (volume string, segments []string)
}

// Posix returns the spec for forward-slash paths rooted at /
func Posix() PathSpec {
	return posixSpec{}
}

// Windows returns the spec for backslash paths with drive or UNC volumes.
// Forward slashes are accepted as separators too.
func Windows() PathSpec {
	return windowsSpec{}
}

// Native returns the spec matching the host platform
func Native() PathSpec {
	if runtime.GOOS == "windows" {
		return Windows()
	}
	return Posix()
}

type posixSpec struct{}

func (posixSpec) Separator() string {
	return "/"
}

func (posixSpec) IsAbs(path string) bool {
	return strings.HasPrefix(path, "/")
}

func (posixSpec) Split(path string) (string, []string) {
	volume := ""
	if strings.HasPrefix(path, "/") {
		volume = "/"
	}
	return volume, splitSegments(path[len(volume):], "/")
}

type windowsSpec struct{}

func (windowsSpec) Separator() string {
	return `\`
}

func (windowsSpec) IsAbs(path string) bool {
	n := windowsVolumeLen(path)
	// a bare drive prefix (C:foo) is drive-relative, not absolute
	return n > 0 && isWindowsSep(path[n-1])
}

func (windowsSpec) Split(path string) (string, []string) {
	n := windowsVolumeLen(path)
	volume := normalizeWindowsVolume(path[:n])
	return volume, splitSegments(path[n:], `\/`)
}

// windowsVolumeLen returns the length of the leading volume: a drive
// prefix with or without its root separator, a UNC \\server\share root,
// or a bare rooted separator
func windowsVolumeLen(path string) int {
	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		if len(path) >= 3 && isWindowsSep(path[2]) {
			return 3
		}
		return 2
	}
	if len(path) >= 2 && isWindowsSep(path[0]) && isWindowsSep(path[1]) {
		// UNC: \\server\share\...
		rest := path[2:]
		i := strings.IndexAny(rest, `\/`)
		if i < 0 {
			return len(path)
		}
		j := strings.IndexAny(rest[i+1:], `\/`)
		if j < 0 {
			return len(path)
		}
		return 2 + i + 1 + j + 1
	}
	if len(path) >= 1 && isWindowsSep(path[0]) {
		return 1
	}
	return 0
}

// normalizeWindowsVolume upper-cases drive letters and settles on the
// backslash so that volumes compare equal across spellings
func normalizeWindowsVolume(volume string) string {
	v := strings.ReplaceAll(volume, "/", `\`)
	if len(v) >= 2 && v[1] == ':' {
		v = strings.ToUpper(v[:1]) + v[1:]
	}
	return v
}

func isWindowsSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// splitSegments splits on any of the separator characters, dropping the
// empty strings produced by doubled or trailing separators
func splitSegments(path, separators string) []string {
	var segments []string
	for _, s := range strings.FieldsFunc(path, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	}) {
		segments = append(segments, s)
	}
	return segments
}
