// Package filesystem provides the read-only filesystem boundary the glob
// engine traverses through.
//
// The engine only ever stats paths and lists directory entries, so the FS
// interface carries exactly those two calls. NewOS backs it with the real
// filesystem; NewAferoFS backs it with any afero filesystem, which is how
// tests traverse an in-memory tree.
package filesystem
