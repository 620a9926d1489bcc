// Package record frames a byte stream into delimiter-separated text records.
//
// A record is the bytes between two delimiters with exactly one trailing
// delimiter removed. Empty records are dropped. Every record must be valid
// UTF-8; anything else is reported as a *DecodeError and ends the stream.
// A final record without a trailing delimiter is still delivered at end of input.
package record
