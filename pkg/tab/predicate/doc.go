// Package predicate classifies scalar cell values.
//
// - IsNumeric/IsInt: localized numeric text (currency symbols and separators
//   are stripped first) or Go numeric values
// - IsBool: true/false vocabularies, Go bools, 0 and 1
// - IsNull: null vocabulary, nil, optionally blank strings
//
// Predicates never fail: values of the wrong kind simply classify as false.
package predicate
