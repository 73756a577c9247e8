// internal/lexicon/search.go
//
// Constrained enumeration used by puzzle generation: find every word that can be
// spelled from a small letter alphabet and contains a required letter.
//
// The walk only descends into children whose edge label is one of the allowed
// letters, so the cost is bounded by the subtree those letters reach instead of
// the whole dictionary.

package lexicon

// Query describes one constrained search. It is passed by value into the
// walk and never stored, so concurrent searches on one Lexicon are safe.
type Query struct {
	Letters   string // allowed edge labels
	Required  rune   // every result contains this letter at least once
	MinLength int    // shortest accepted word, in runes
	Limit     int    // stop once more than Limit words are found; 0 = no limit
}

// SearchResult is the outcome of Search.
type SearchResult struct {
	Words  []string
	Nodes  int  // nodes visited
	Capped bool // walk stopped early because Limit was exceeded
}

// Search returns every word using only q.Letters that contains q.Required
// and is at least q.MinLength long. When q.Limit is set the walk stops as
// soon as Limit+1 words are collected, so Words undercounts in that case.
func (l *Lexicon) Search(q Query) SearchResult {
	allowed := dedupe(q.Letters)
	w := walker{q: &q, allowed: allowed}
	w.visit(l.root, 0)
	return SearchResult{Words: w.out, Nodes: w.nodes, Capped: w.stop}
}

type walker struct {
	q       *Query
	allowed []rune
	out     []string
	nodes   int
	stop    bool
}

// visit descends from n; required counts occurrences of q.Required on the path.
func (w *walker) visit(n *Node, required int) {
	if w.stop {
		return
	}
	w.nodes++
	if n.end && required > 0 && n.depth >= w.q.MinLength {
		w.out = append(w.out, n.Word())
		if w.q.Limit > 0 && len(w.out) > w.q.Limit {
			w.stop = true
			return
		}
	}
	for _, c := range w.allowed {
		child := n.children[c]
		if child == nil {
			continue
		}
		next := required
		if c == w.q.Required {
			next++
		}
		w.visit(child, next)
		if w.stop {
			return
		}
	}
}

// dedupe returns the distinct runes of s in first-seen order.
func dedupe(s string) []rune {
	seen := make(map[rune]bool, len(s))
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
