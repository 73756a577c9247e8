// internal/words/words.go
//
// Provides dictionary management for puzzle generation.
//
// Responsibilities:
//   - Load the standard and kids word lists from environment-provided files or fall back to embedded defaults.
//   - Drop tokens that are not plain a–z words or are shorter than the mode's minimum length.
//   - Build one read-only lexicon per list and hand the right one to the generator per difficulty.
//
// Word Lists:
//   - "standard": large general-purpose list (easy, medium, hard).
//   - "kids":     smaller common-words list (kids).
//
// Initialization behavior (Load):
//   1. If Options.StandardFile is set, read it; otherwise use assets/standard.txt.
//   2. If Options.KidsFile is set, read it; otherwise use assets/kids.txt.
//   3. An empty list after filtering is an error: generation could never succeed.
//
// Constraints:
//   • Files are whitespace/newline separated; "#" tokens are skipped.
//   • Files and the embedded lists go through the same Parse.
//   • Lists are normalized to lowercase with accents folded away.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/spellingbee/assets"
	"github.com/robalobadob/spellingbee/internal/lexicon"
	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// ErrEmptyList is returned when a dictionary has no usable words.
var ErrEmptyList = errors.New("words: list is empty")

// Options names optional dictionary files.
type Options struct {
	StandardFile string
	KidsFile     string
}

// Dictionaries holds one lexicon per word list. It is safe for concurrent
// readers once Load returns.
type Dictionaries struct {
	standard *lexicon.Lexicon
	kids     *lexicon.Lexicon
}

// Load reads both lists and builds their lexicons.
func Load(opts Options) (*Dictionaries, error) {
	std, err := loadList("standard", opts.StandardFile, assets.StandardList, puzzle.MinLengthStandard)
	if err != nil {
		return nil, err
	}
	kids, err := loadList("kids", opts.KidsFile, assets.KidsList, puzzle.MinLengthKids)
	if err != nil {
		return nil, err
	}
	return &Dictionaries{standard: std, kids: kids}, nil
}

// FromLists builds Dictionaries from in-memory lists, applying the same
// filtering as Load.
func FromLists(standard, kids []string) *Dictionaries {
	return &Dictionaries{
		standard: lexicon.Build(Filter(standard, puzzle.MinLengthStandard)),
		kids:     lexicon.Build(Filter(kids, puzzle.MinLengthKids)),
	}
}

func loadList(name, path string, embedded func() (io.ReadCloser, error), minLen int) (*lexicon.Lexicon, error) {
	source := "embedded"
	open := embedded
	if path != "" {
		source = path
		open = func() (io.ReadCloser, error) { return os.Open(path) }
	}
	raw, err := readList(open)
	if err != nil {
		return nil, fmt.Errorf("words: load %s list from %s: %w", name, source, err)
	}

	list := Filter(raw, minLen)
	if len(list) == 0 {
		return nil, fmt.Errorf("%s list from %s: %w", name, source, ErrEmptyList)
	}
	lex := lexicon.Build(list)
	log.Info().
		Str("list", name).
		Str("source", source).
		Int("words", lex.Len()).
		Int("skipped", len(raw)-len(list)).
		Msg("dictionary loaded")
	return lex, nil
}

// readList opens a word list (file or embedded) and parses it.
func readList(open func() (io.ReadCloser, error)) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse splits r on whitespace and lowercases every token. Tokens starting
// with '#' are comments.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok := sc.Text()
		if strings.HasPrefix(tok, "#") {
			continue
		}
		out = append(out, strings.ToLower(tok))
	}
	return out, sc.Err()
}

// Filter keeps alphabetic words of at least minLen letters. Accents are
// folded first, so "café" is kept as "cafe".
func Filter(list []string, minLen int) []string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if folded, _, err := transform.String(fold, w); err == nil {
			w = folded
		}
		if len(w) >= minLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Lexicon returns the lexicon backing difficulty d.
func (d *Dictionaries) Lexicon(diff puzzle.Difficulty) *lexicon.Lexicon {
	if diff == puzzle.Kids {
		return d.kids
	}
	return d.standard
}

// Stats returns counts of loaded words: (standard, kids).
func (d *Dictionaries) Stats() (standardCount int, kidsCount int) {
	return d.standard.Len(), d.kids.Len()
}
