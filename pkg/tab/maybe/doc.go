// Package maybe provides a null soaking Chain for digging into nested
// records, maps, structs and sequences.
//
// A Chain either holds a value or is empty. Steps on an empty chain are
// skipped, so a long lookup never panics on a missing link:
// - Of: start a chain from any value (nil starts empty)
// - Get/Path/Index: step into fields, keys and elements
// - Map/Then/ThenTry: transform the held value
// - Or/OrElse: fall back when the chain came up empty
// - Ensure: side effects without changing the chain
// - Value/Ok/Err: read the outcome
package maybe
