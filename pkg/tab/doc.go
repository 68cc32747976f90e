// Package tab holds the types shared by the tabutils helper packages: the
// ordered Record, the Kind tag used to dispatch on scalar/sequence/mapping
// values, the default vocabularies and the separator pair.
//
// Highlights:
// - Record: ordered string-keyed row of tabular data
// - KindOf/Number: classify a value once at the boundary
// - DefTrues/DefFalses/DefNulls/Currencies: default vocabularies
// - Separators: (thousand, decimal) pair used to parse localized numbers
// - IsNil: typed-nil aware nil check shared across packages
//
// The functional helpers themselves live in sub-packages (predicate,
// separator, text, record, iterx, codec, dtype, maybe).
package tab
