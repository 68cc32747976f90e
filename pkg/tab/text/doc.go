// Package text contains string transforms for cleaning tabular headers and
// cell values.
//
// Highlights:
// - Underscorify: slugify names with underscores ("ALL CAPS" -> "all_caps")
// - MReplace: ordered literal substring replacements
// - Strip: remove currency symbols and separators from numeric text
// - Xmlize: escape &, <, > and newlines, recursing into nested sequences
// - Dedupe: make field names unique with _2, _3 suffixes
// - AddOrdinal: 1st, 2nd, 3rd, 11th ...
// - Find: exact or fuzzy overlap between two word lists
// - GetExt: file format from a path or a format= query parameter
package text
