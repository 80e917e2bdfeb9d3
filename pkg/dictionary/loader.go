/*
Package dictionary loads newline-delimited word lists for the solver.

Only lines whose trimmed, lowercased content is exactly solver.WordLen
letters long survive the load; everything else is counted and skipped.
Accepted words are also indexed in a patricia trie so drivers can do cheap
membership and first-letter checks without scanning the word slice.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/clueserve/pkg/solver"
)

// ErrNoWords signals a readable list that yielded zero usable words.
// Treated as a load failure so an empty dictionary never serves silently.
var ErrNoWords = errors.New("dictionary: no usable words in list")

// Dictionary is the loaded, deduplicated word list. Read-only after load.
type Dictionary struct {
	words   []solver.Word
	trie    *patricia.Trie
	skipped int
	dupes   int
}

// Stats summarizes a finished load.
type Stats struct {
	Words   int
	Skipped int
	Dupes   int
}

// Load reads a word list from disk.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer file.Close()

	dict, err := LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return dict, nil
}

// LoadReader reads a newline-delimited word list from r.
func LoadReader(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{trie: patricia.NewTrie()}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		w, err := solver.ParseWord(line)
		if err != nil {
			d.skipped++
			continue
		}
		if !d.trie.Insert(patricia.Prefix(line), d.Len()) {
			// already present, keep the first occurrence's position
			d.dupes++
			continue
		}
		d.words = append(d.words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(d.words) == 0 {
		return nil, ErrNoWords
	}

	log.Debugf("Loaded %d words (%d lines skipped, %d duplicates)",
		len(d.words), d.skipped, d.dupes)
	return d, nil
}

// Words returns the loaded words in file order. Callers must not mutate the
// slice; the solver clones before filtering.
func (d *Dictionary) Words() []solver.Word {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether the exact word was loaded.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Match(patricia.Prefix(word))
}

// CountPrefix counts loaded words starting with the given prefix. Used for
// startup stats and seed-letter sanity logging.
func (d *Dictionary) CountPrefix(prefix string) int {
	count := 0
	_ = d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		count++
		return nil
	})
	return count
}

// Stats returns load counters.
func (d *Dictionary) Stats() Stats {
	return Stats{Words: len(d.words), Skipped: d.skipped, Dupes: d.dupes}
}
