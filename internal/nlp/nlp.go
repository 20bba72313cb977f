package nlp

import "strings"

// Entity is a labelled span found by named-entity recognition.
type Entity struct {
	Text  string
	Label string
}

// Token is a single word with its part-of-speech tag (Penn Treebank).
type Token struct {
	Text string
	Tag  string
}

// Document is the parsed form of a text.
type Document struct {
	Tokens     []Token
	Entities   []Entity
	NounChunks []string
	Sentences  []string
}

// Pipeline parses raw text into a Document. Implementations must be safe for
// concurrent use once constructed.
type Pipeline interface {
	Parse(text string) (*Document, error)
}

// IsNoun reports whether tag is one of the noun tags.
func IsNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// IsNumber reports whether tag marks a cardinal number.
func IsNumber(tag string) bool {
	return tag == "CD"
}

func isChunkModifier(tag string) bool {
	switch tag {
	case "DT", "PRP$", "JJ", "JJR", "JJS":
		return true
	}
	return false
}

// ChunkNouns groups tagged tokens into noun phrases: maximal runs of
// determiners, possessives, adjectives and nouns that end in a noun.
func ChunkNouns(tokens []Token) []string {
	var chunks []string
	var run []Token

	flush := func() {
		end := len(run)
		for end > 0 && !IsNoun(run[end-1].Tag) {
			end--
		}
		if end > 0 {
			words := make([]string, 0, end)
			for _, tok := range run[:end] {
				words = append(words, tok.Text)
			}
			chunks = append(chunks, strings.Join(words, " "))
		}
		run = run[:0]
	}

	for _, tok := range tokens {
		switch {
		case IsNoun(tok.Tag):
			run = append(run, tok)
		case isChunkModifier(tok.Tag):
			// a modifier after a noun starts a new phrase
			if len(run) > 0 && IsNoun(run[len(run)-1].Tag) {
				flush()
			}
			run = append(run, tok)
		default:
			flush()
		}
	}
	flush()
	return chunks
}
