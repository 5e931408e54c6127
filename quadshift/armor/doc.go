// Package armor protects a sealed envelope with Reed-Solomon parity shards.
//
// A stored envelope is all-or-nothing: losing one byte of the tag stream
// desynchronizes every position after it. Armor splits the blob into data
// shards plus parity shards so that up to parity-many shards can be lost and
// the exact bytes still recovered.
package armor
