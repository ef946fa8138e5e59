package classifier

import (
	"strings"
	"unicode"
)

// lexiconModel is the in-process text-classification model used by the
// local variant: per-class term lists scored by hit count. The winning
// class probability is its share of all matched terms.
type lexiconModel struct {
	classes map[string][]string
	index   map[string]string
}

func newLexiconModel(classes map[string][]string) *lexiconModel {
	m := &lexiconModel{classes: classes, index: make(map[string]string)}
	for label, terms := range classes {
		for _, t := range terms {
			m.index[t] = label
		}
	}
	return m
}

// predict returns the dominant class and its raw probability. An empty
// label means the model found no signal at all.
func (m *lexiconModel) predict(text string) (string, float64) {
	counts := make(map[string]int)
	total := 0
	for _, tok := range tokenize(text) {
		if label, ok := m.index[tok]; ok {
			counts[label]++
			total++
		}
	}
	if total == 0 {
		return "", 0
	}

	best := ""
	bestCount := 0
	tied := false
	for label, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, tied = label, n, false
		case n == bestCount:
			tied = true
		}
	}
	if tied {
		return "", 0
	}
	return best, float64(bestCount) / float64(total)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func defaultSentimentLexicon() *lexiconModel {
	return newLexiconModel(map[string][]string{
		"positive": {
			"good", "great", "excellent", "amazing", "awesome", "love",
			"loved", "wonderful", "fantastic", "happy", "best", "brilliant",
			"perfect", "nice", "enjoy", "enjoyed", "beautiful", "impressive",
			"recommend", "delighted", "glad", "thanks", "thank", "win", "winning",
		},
		"negative": {
			"bad", "terrible", "awful", "horrible", "hate", "hated",
			"worst", "disappointing", "disappointed", "angry", "sad",
			"broken", "useless", "poor", "fail", "failed", "failure",
			"annoying", "frustrating", "frustrated", "wrong", "never",
			"garbage", "scam", "slow",
		},
	})
}

func defaultEmotionLexicon() *lexiconModel {
	return newLexiconModel(map[string][]string{
		"joy": {
			"happy", "joy", "delighted", "excited", "love", "great",
			"wonderful", "amazing", "glad", "cheerful", "fantastic",
		},
		"sadness": {
			"sad", "unhappy", "depressed", "miserable", "crying", "cry",
			"heartbroken", "grief", "lonely", "disappointed",
		},
		"anger": {
			"angry", "furious", "mad", "rage", "outraged", "annoyed",
			"hate", "irritated", "frustrated",
		},
		"fear": {
			"afraid", "scared", "terrified", "fear", "worried", "anxious",
			"panic", "nervous", "dread",
		},
		"surprise": {
			"surprised", "shocked", "astonished", "unexpected", "wow",
			"unbelievable", "stunned",
		},
		"disgust": {
			"disgusting", "gross", "revolting", "nasty", "repulsive",
			"sickening", "vile",
		},
	})
}
