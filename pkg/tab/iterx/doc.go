// Package iterx provides small lazy-sequence utilities built on iter.Seq.
//
// Highlights:
// - Chunk/ChunkSlice: fixed-size groups of a sequence, with start/stop bounds
// - ChunkReader: fixed-size byte chunks of an io.Reader
// - ChunkProvider: re-chunk a streaming content provider
// - OpEverseen/Everseen: running minimum (or any comparison), order kept
// - FPartial/Fold/SumAndCount: reducers over sequences
// - ArraySearchType/ArraySubstitute/Leaves: helpers for nested []any values
package iterx
