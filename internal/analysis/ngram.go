package analysis

import (
	"sort"
	"strings"
)

// NGram is a move sequence that repeats within a solve.
type NGram struct {
	N        int      `json:"n"`
	Sequence []string `json:"sequence"`
	Count    int      `json:"count"`
	Starts   []int    `json:"starts,omitempty"`
}

// NGramReport holds the most frequent n-grams keyed by length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// RollingHash is a Rabin-Karp hash over a fixed window of interned tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []uint32
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   131,
		n:      n,
		window: make([]uint32, 0, n),
		pow:    1,
	}
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint32) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

func (rh *RollingHash) equal(tokens []uint32) bool {
	if len(tokens) != len(rh.window) {
		return false
	}
	for i := range tokens {
		if tokens[i] != rh.window[i] {
			return false
		}
	}
	return true
}

type ngramEntry struct {
	first  int
	tokens []uint32
	count  int
	starts []int
}

// maxStarts caps how many start positions are kept per n-gram.
const maxStarts = 10

// MineNGrams finds the topK most frequent sequences of each length in
// [minN, maxN] that occur at least twice. Whole-puzzle rotations count
// as tokens like any other move.
func MineNGrams(tokens []string, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}

	ids := make([]uint32, len(tokens))
	intern := make(map[string]uint32)
	for i, tok := range tokens {
		id, ok := intern[tok]
		if !ok {
			id = uint32(len(intern) + 1)
			intern[tok] = id
		}
		ids[i] = id
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineN(tokens, ids, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineN(tokens []string, ids []uint32, n, topK int) []NGram {
	// Colliding windows are chained per hash.
	counts := make(map[uint64][]*ngramEntry)
	rh := NewRollingHash(n)

	for i, id := range ids {
		rh.Roll(id)
		if !rh.Ready() {
			continue
		}
		start := i - n + 1

		var found *ngramEntry
		for _, e := range counts[rh.Hash()] {
			if rh.equal(e.tokens) {
				found = e
				break
			}
		}
		if found == nil {
			found = &ngramEntry{first: start, tokens: append([]uint32(nil), rh.window...)}
			counts[rh.Hash()] = append(counts[rh.Hash()], found)
		}
		found.count++
		if len(found.starts) < maxStarts {
			found.starts = append(found.starts, start)
		}
	}

	var entries []*ngramEntry
	for _, chain := range counts {
		for _, e := range chain {
			if e.count >= 2 {
				entries = append(entries, e)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		result[i] = NGram{
			N:        n,
			Sequence: append([]string(nil), tokens[e.first:e.first+n]...),
			Count:    e.count,
			Starts:   e.starts,
		}
	}
	return result
}

// Key joins a sequence for display or map lookup.
func (g NGram) Key() string {
	return strings.Join(g.Sequence, " ")
}
