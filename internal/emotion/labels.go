package emotion

import "strings"

// Label is a symbolic classification result drawn from the fixed emotion
// vocabulary. Classifiers may return arbitrary strings; only labels in the
// vocabulary participate in structure mapping.
type Label string

const (
	Happy    Label = "happy"
	Sad      Label = "sad"
	Angry    Label = "angry"
	Fear     Label = "fear"
	Surprise Label = "surprise"
	Neutral  Label = "neutral"
	Disgust  Label = "disgust"
)

// Vocabulary lists the supported labels in canonical order.
var Vocabulary = []Label{Happy, Sad, Angry, Fear, Surprise, Neutral, Disgust}

// Normalize trims and lowercases a raw classifier label.
func Normalize(raw string) Label {
	return Label(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether the label is part of the vocabulary.
func Known(l Label) bool {
	_, ok := grammarTags[l]
	return ok
}
