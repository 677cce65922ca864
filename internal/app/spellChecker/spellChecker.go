package spellChecker

import (
	"iter"

	"github.com/box1bs/speller/pkg/hashMap"
	"github.com/box1bs/speller/pkg/logger"
)

const (
	presenceMarker = 1
	minTypo = 1
	maxTypo = 2
)

type SpellChecker struct {
	dict 	*hashMap.HashMap[int]
	log 	*logger.Logger
}

type Result struct {
	Correct 	bool
	Suggestions []string
}

func NewSpellChecker(capacity int, hash hashMap.HashFunc, log *logger.Logger) *SpellChecker {
	return &SpellChecker{
		dict: 	hashMap.New[int](capacity, hashMap.WithHashFunc(hash)),
		log: 	log,
	}
}

// LoadDictionary stores every word and returns how many were read.
// Repeated words collapse into one entry.
func (s *SpellChecker) LoadDictionary(words iter.Seq[string]) int {
	n := 0
	for w := range words {
		s.dict.Put(w, presenceMarker)
		n++
	}
	s.log.Write(logger.NewMessage(logger.SPELL_LAYER, logger.DEBUG, "loaded %d words, %d distinct, capacity %d, load %.3f",
		n, s.dict.Size(), s.dict.Capacity(), s.dict.TableLoad()))
	return n
}

// Check reports whether word is in the dictionary. For an unknown word every
// entry starting with the same rune, at least as long as word and one or two
// edits away is suggested, in dictionary traversal order.
func (s *SpellChecker) Check(word string) Result {
	if s.dict.Contains(word) {
		return Result{Correct: true}
	}

	query := []rune(word)
	suggestions := []string{}
	if len(query) == 0 {
		return Result{Suggestions: suggestions}
	}

	for candidate := range s.dict.Keys() {
		c := []rune(candidate)
		if len(c) < len(query) || c[0] != query[0] {
			continue
		}
		if d := distance(query, c); d >= minTypo && d <= maxTypo {
			suggestions = append(suggestions, candidate)
		}
	}

	s.log.Write(logger.NewMessage(logger.SPELL_LAYER, logger.DEBUG, "%q misspelled, %d suggestions", word, len(suggestions)))
	return Result{Suggestions: suggestions}
}

// Dictionary exposes the backing map for diagnostics. Callers must not modify it.
func (s *SpellChecker) Dictionary() *hashMap.HashMap[int] {
	return s.dict
}
