// Package gen turns a resolved profile into Java source text for a single
// constants class. Generation is a pure function of its input: no I/O, no
// clock, no host state, and byte-identical output for equal inputs, so the
// host build system can cache the result safely.
package gen
