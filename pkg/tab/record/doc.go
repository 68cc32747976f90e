// Package record transforms single rows of tabular data (tab.Record).
//
// Key operations:
// - Flatten: join nested record keys with '_' ({"a": {"b": 1}} -> {"a_b": 1})
// - Combine/Merge: reduce a field across two records when a predicate matches
// - Fill: fill missing values from a constant, another field, or the
//   previous record, with a per-field limit on consecutive fills
// - DFilter: drop (or keep) fields named in a blacklist
// - DefItemGetter: field accessor with a default for missing keys
//
// Every operation returns a new record and leaves its inputs untouched.
package record
