// Package format implements the on-disk matrix and schedule readers:
// the "cscmat" text layout, the "bincsc.json" JSON layout, and the
// rate-adaption CSV layout. None of this is core; it exists so a
// caller can go from a file on disk to a matrix.MotherMatrix /
// rateadapt.Schedule pair without hand-rolling the formats.
//
// Every reader returns a *ParseError carrying the file path and a
// reason string, never a bare sentinel.
package format
