// package wordlist provides the fixed word tables that mnemonic
// sentences are encoded against. Each table holds exactly 2048
// distinct words; the word's position in the table, not its spelling,
// is what a mnemonic encodes.
package wordlist

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Size is the number of words in every table.
const Size = 2048

// Language identifies the language of a word table.
type Language string

//go:embed english.txt
var englishTxt string

// List is an immutable, ordered word table for a single language.
// It is safe for unbounded concurrent use.
type List struct {
	lang   Language
	words  []string
	index  map[string]int
	sorted bool
}

// New builds a table from exactly Size distinct words, in the order
// defined by the standard for that language.
func New(lang Language, words []string) (*List, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("wordlist: %s: %d words, want %d", lang, len(words), Size)
	}
	l := &List{
		lang:   lang,
		words:  append([]string(nil), words...),
		index:  make(map[string]int, Size),
		sorted: sort.StringsAreSorted(words),
	}
	for i, w := range l.words {
		if _, ok := l.index[w]; ok {
			return nil, fmt.Errorf("wordlist: %s: duplicate word %q", lang, w)
		}
		l.index[w] = i
	}
	return l, nil
}

func (l *List) Language() Language { return l.lang }

// Word returns the word at position i, 0 through Size-1.
func (l *List) Word(i int) string { return l.words[i] }

// Index returns the position of word in the table.
func (l *List) Index(word string) (int, bool) {
	i, ok := l.index[word]
	return i, ok
}

func (l *List) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// HasPrefix reports whether any word in the table starts with prefix.
func (l *List) HasPrefix(prefix string) bool {
	if l.sorted {
		i := sort.SearchStrings(l.words, prefix)
		return i < len(l.words) && strings.HasPrefix(l.words[i], prefix)
	}
	for _, w := range l.words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

var english struct {
	once sync.Once
	list *List
}

// English returns the built-in english table.
func English() *List {
	english.once.Do(func() {
		l, err := New("english", strings.Fields(englishTxt))
		if err != nil {
			panic(err)
		}
		english.list = l
	})
	return english.list
}

// Registry is a fixed, priority-ordered set of word tables. The first
// table is the default language.
type Registry struct {
	lists []*List
}

func NewRegistry(lists ...*List) *Registry {
	if len(lists) == 0 {
		panic("wordlist: empty registry")
	}
	return &Registry{lists: append([]*List(nil), lists...)}
}

// Default returns a registry holding only the built-in english table.
func Default() *Registry {
	return NewRegistry(English())
}

// Resolve returns the first table, in priority order, that contains
// every word. Should a mnemonic happen to validate against several
// languages, the earliest one wins; the standard carries no language
// tag to disambiguate with. When no table matches, the default table
// is returned so that decoding reports which word is unknown.
func (r *Registry) Resolve(words []string) *List {
	for _, l := range r.lists {
		if containsAll(l, words) {
			return l
		}
	}
	return r.lists[0]
}

func containsAll(l *List, words []string) bool {
	for _, w := range words {
		if !l.Contains(w) {
			return false
		}
	}
	return true
}

// IsWord reports whether word appears in any table of the registry.
// With partial set, a prefix match is enough.
func (r *Registry) IsWord(word string, partial bool) bool {
	for _, l := range r.lists {
		if partial {
			if l.HasPrefix(word) {
				return true
			}
		} else if l.Contains(word) {
			return true
		}
	}
	return false
}
