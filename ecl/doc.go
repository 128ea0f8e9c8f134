// Package ecl translates parsed TOML documents into the educational config
// language dialect.
//
// The translation pipeline has four stages, run in order by [Translator]:
//
//  1. [Discover] walks the whole document and registers every constant
//     declared under a "constants" table (any nesting depth, case-insensitive
//     key) into a single flat, document-wide namespace.
//  2. Constant declarations are emitted as top-level "def NAME := value;"
//     lines, one per registered name, in discovery order.
//  3. String values are rewritten by replacing ".{NAME}." placeholders with
//     the referenced constant's canonical scalar text. Substitution is a
//     single pass: replacement text is never re-scanned for placeholders.
//  4. Each top-level table becomes a named "$[ ... ]" block; arrays render
//     as "#( ... )" lists, and comment trivia is carried through as
//     backslash-prefixed annotation lines.
//
// The TOML front end lives in toml.go and produces the in-memory [Document]
// tree consumed by the pipeline. The tree is read-only after parsing; the
// registry and every query over the tree are explicit values, so independent
// translations never share state.
package ecl
