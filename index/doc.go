// Package index provides the secondary indices built while parsing XMAP
// records.
//
// Two structures are maintained, both keyed by value.Value and holding
// roaring-compressed position sets:
//
//   - Index answers "which records have value V in column C".
//   - GroupIndex answers "which records pair value V1 in column A with value
//     V2 in column B", for a fixed list of column pairs.
//
// Both are append-only. Merge combines the indices of independently parsed
// shards; the merged result equals a single pass over the concatenated
// input when each shard's offset is the number of records before it.
package index
