package search

import "sort"

// numShards shards the 64-bit hash space by its top 5 bits, matching the
// original prototype's bucketed seen-set: each shard holds a sorted slice
// searched and inserted into by binary search.
const numShards = 32

// seenSet is a per-depth dedup structure: hashes already recorded at the
// current search depth are skipped when re-encountered.
type seenSet struct {
	shards [numShards][]uint64
}

func newSeenSet() *seenSet { return &seenSet{} }

func shardOf(h uint64) int { return int(h >> (64 - 5)) }

// Contains reports whether h has already been recorded.
func (s *seenSet) Contains(h uint64) bool {
	shard := s.shards[shardOf(h)]
	i := sort.Search(len(shard), func(i int) bool { return shard[i] >= h })
	return i < len(shard) && shard[i] == h
}

// Insert records h and reports whether it was newly added.
func (s *seenSet) Insert(h uint64) bool {
	idx := shardOf(h)
	shard := s.shards[idx]
	i := sort.Search(len(shard), func(i int) bool { return shard[i] >= h })
	if i < len(shard) && shard[i] == h {
		return false
	}
	shard = append(shard, 0)
	copy(shard[i+1:], shard[i:])
	shard[i] = h
	s.shards[idx] = shard
	return true
}
