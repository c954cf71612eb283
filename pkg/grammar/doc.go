// Package grammar parses wildcard patterns into term sequences.
//
// A grammar converts a pattern string into a flat, ordered sequence of
// terms: literal runs, single- and multi-character wildcards, character
// classes, and alternations. Three grammars are built in (sql, simple,
// bsd); custom grammars register through Register and are looked up by
// name, which is how callers select pattern dialects at runtime.
package grammar
