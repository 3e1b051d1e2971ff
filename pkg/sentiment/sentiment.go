package sentiment

import (
	"strings"
	"unicode"
)

// Score holds a lexicon-averaged sentiment for a piece of text.
// Polarity ranges from -1 (negative) to 1 (positive), subjectivity from
// 0 (objective) to 1 (subjective).
type Score struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type wordScore struct {
	polarity     float64
	subjectivity float64
}

var lexicon = map[string]wordScore{
	"good":      {0.7, 0.6},
	"great":     {0.8, 0.75},
	"excellent": {1.0, 1.0},
	"amazing":   {0.6, 0.9},
	"wonderful": {1.0, 1.0},
	"love":      {0.5, 0.6},
	"loved":     {0.7, 0.8},
	"helpful":   {0.5, 0.5},
	"kind":      {0.6, 0.9},
	"caring":    {0.6, 0.8},
	"happy":     {0.8, 1.0},
	"thanks":    {0.2, 0.2},
	"thank":     {0.2, 0.2},
	"best":      {1.0, 0.3},
	"nice":      {0.6, 1.0},
	"easy":      {0.4, 0.8},

	"bad":       {-0.7, 0.65},
	"terrible":  {-1.0, 1.0},
	"awful":     {-1.0, 1.0},
	"horrible":  {-1.0, 1.0},
	"sad":       {-0.5, 1.0},
	"poor":      {-0.4, 0.6},
	"worst":     {-1.0, 0.3},
	"hate":      {-0.8, 0.9},
	"slow":      {-0.3, 0.4},
	"broken":    {-0.4, 0.5},
	"useless":   {-0.5, 0.6},
	"difficult": {-0.5, 1.0},
	"confusing": {-0.4, 0.7},
	"cruel":     {-0.8, 0.9},
	"neglected": {-0.6, 0.7},
}

// negations flip the polarity of the following scored word.
var negations = map[string]bool{
	"not":   true,
	"no":    true,
	"never": true,
	"isnt":  true,
	"dont":  true,
	"cant":  true,
	"wont":  true,
}

// Analyze scores text by averaging the lexicon entries of its words,
// mirroring a naive pattern-lexicon sentiment model.
func Analyze(text string) Score {
	words := tokenize(text)

	var polaritySum, subjectivitySum float64
	var scored int
	negate := false

	for _, w := range words {
		if negations[w] {
			negate = true
			continue
		}
		ws, ok := lexicon[w]
		if !ok {
			continue
		}
		p := ws.polarity
		if negate {
			p = -p * 0.5
		}
		polaritySum += p
		subjectivitySum += ws.subjectivity
		scored++
		negate = false
	}

	if scored == 0 {
		return Score{}
	}
	return Score{
		Polarity:     polaritySum / float64(scored),
		Subjectivity: subjectivitySum / float64(scored),
	}
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)
	return strings.Fields(cleaned)
}
