// Package separator infers the thousand and decimal separators of a
// localized numeric string.
//
// Afterish counts the digits after a candidate separator, Get turns the two
// counts into a separator pair and Infer picks the pair for a column of
// values. "1,234.56" reads as (",", "."), "1.234,56" as (".", ","); counts
// that fit neither reading are reported as tab.ErrInvalidFormat.
package separator
