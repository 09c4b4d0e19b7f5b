// Package diag models structured parse diagnostics.
//
// The lexer and parser never print and never abort: they hand every problem
// to a Reporter. Buffer is the Reporter used by the engine: an append-only,
// lock-guarded record of everything emitted during a parse, snapshotted into
// the caller-facing error when a parse fails. Bag is the single-threaded
// collection used by the CLI pipeline for sorting and rendering.
package diag
