package emotion

import (
	"fmt"
	"strings"
)

// Tag is an intermediate structural token derived from a Label: a
// part-of-speech role in grammatical mode, a communicative function in
// functional mode.
type Tag string

// Mode selects which structure mapping drives prompt construction. The mode
// is chosen once at startup and fixed for the process lifetime.
type Mode string

const (
	ModeGrammatical Mode = "grammatical"
	ModeFunctional  Mode = "functional"
)

// ParseMode validates a configured structure mode string.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeGrammatical:
		return ModeGrammatical, nil
	case ModeFunctional, "":
		return ModeFunctional, nil
	default:
		return "", fmt.Errorf("unsupported structure mode %q (use grammatical or functional)", value)
	}
}

var grammarTags = map[Label]Tag{
	Happy:    "adjective",
	Sad:      "verb",
	Angry:    "noun",
	Fear:     "adverb",
	Surprise: "interjection",
	Neutral:  "article",
	Disgust:  "preposition",
}

var functionTags = map[Label]Tag{
	Happy:    "poetic",
	Sad:      "emotive",
	Angry:    "conative",
	Fear:     "referential",
	Surprise: "phatic",
	Disgust:  "metalingual",
	Neutral:  "syntagmatic",
}

var functionInstructions = map[Tag]string{
	"poetic":      "foreground metaphor and rhythm",
	"emotive":     "include subjective interior tone",
	"conative":    "address someone directly or use imperative",
	"referential": "describe concrete context",
	"phatic":      "include an interruption or opening marker",
	"metalingual": "reflect on language itself",
	"syntagmatic": "maintain grammatical coherence",
}

// Sequence maps an ordered label sequence to the mode's structural tags.
// Labels outside the vocabulary are dropped; ordering is preserved.
func (m Mode) Sequence(labels []Label) []Tag {
	table := functionTags
	if m == ModeGrammatical {
		table = grammarTags
	}
	tags := make([]Tag, 0, len(labels))
	for _, label := range labels {
		if tag, ok := table[label]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// InstructionFor returns the structural rule text for a functional tag. Tags
// without a registered instruction get a literal apply directive so prompt
// construction stays total.
func InstructionFor(tag Tag) string {
	if instruction, ok := functionInstructions[tag]; ok {
		return instruction
	}
	return fmt.Sprintf("apply: %s", tag)
}
