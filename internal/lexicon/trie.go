// internal/lexicon/trie.go
//
// Prefix tree over the dictionary.
// Responsibilities:
//   - Build the tree once from a word list (Insert).
//   - Answer exact-word and prefix membership queries.
//   - Enumerate every word below a prefix, reconstructing words through parent links.
//
// Notes:
//   - A Lexicon is read-only once loading finishes, so concurrent readers need no locking.
//   - Children own their subtrees; the parent pointer is only a back-reference.

package lexicon

// Node is one character position in the tree.
type Node struct {
	char     rune
	end      bool
	children map[rune]*Node
	parent   *Node // not owned; walked upward by Word()
	depth    int
}

// Char returns the edge label leading to this node (zero for the root).
func (n *Node) Char() rune { return n.char }

// IsEnd reports whether the path from the root to n spells a word.
func (n *Node) IsEnd() bool { return n.end }

// Child returns the child reached through c, or nil.
func (n *Node) Child(c rune) *Node { return n.children[c] }

// Word rebuilds the string spelled from the root down to n.
func (n *Node) Word() string {
	out := make([]rune, n.depth)
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur.char
	}
	return string(out)
}

// Lexicon owns the root node and counts distinct words.
type Lexicon struct {
	root  *Node
	words int
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{root: &Node{children: map[rune]*Node{}}}
}

// Build inserts every word of list into a fresh Lexicon.
func Build(list []string) *Lexicon {
	l := New()
	for _, w := range list {
		l.Insert(w)
	}
	return l
}

// Len returns the number of distinct words inserted.
func (l *Lexicon) Len() int { return l.words }

// Root exposes the root node for callers that walk the tree themselves.
func (l *Lexicon) Root() *Node { return l.root }

// Insert adds word to the tree. Empty strings are ignored and
// inserting the same word twice leaves the tree unchanged.
func (l *Lexicon) Insert(word string) {
	if word == "" {
		return
	}
	node := l.root
	for _, c := range word {
		child, ok := node.children[c]
		if !ok {
			child = &Node{
				char:     c,
				children: map[rune]*Node{},
				parent:   node,
				depth:    node.depth + 1,
			}
			node.children[c] = child
		}
		node = child
	}
	if !node.end {
		node.end = true
		l.words++
	}
}

// find walks the path for s and returns its final node, or nil.
func (l *Lexicon) find(s string) *Node {
	node := l.root
	for _, c := range s {
		node = node.children[c]
		if node == nil {
			return nil
		}
	}
	return node
}

// ContainsWord reports whether word was inserted. The match must end
// exactly on the last character of word; a shorter embedded word does not count.
func (l *Lexicon) ContainsWord(word string) bool {
	if word == "" {
		return false
	}
	n := l.find(word)
	return n != nil && n.end
}

// ContainsPrefix reports whether any inserted word starts with prefix.
func (l *Lexicon) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	return l.find(prefix) != nil
}

// WordsWithPrefix returns every inserted word starting with prefix,
// including prefix itself when it is a word. Order is unspecified.
// An empty prefix yields nil.
func (l *Lexicon) WordsWithPrefix(prefix string) []string {
	if prefix == "" {
		return nil
	}
	n := l.find(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, &out)
	return out
}

// collect appends every end-of-word node under n (n included).
func collect(n *Node, out *[]string) {
	if n.end {
		*out = append(*out, n.Word())
	}
	for _, child := range n.children {
		collect(child, out)
	}
}
