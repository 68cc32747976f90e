// Package codec converts between text, bytes and JSON-ready values.
//
// Highlights:
// - Decode/Encode: charset conversion by name (utf-8, latin1, windows-1252 ...)
// - Byte: build a byte slice from text, characters or integers
// - Normalize/MarshalJSON: make decimals, times, sets and lazy sequences
//   serializable while keeping record field order
package codec
