// Package config holds the typed settings shared by the predicate and
// separator helpers: the true/false/null vocabularies, the currency symbols
// stripped from numbers, the default encoding and the separator pair.
//
// Settings are read from YAML and overlaid on Default, so a document only
// needs the keys it changes.
package config
