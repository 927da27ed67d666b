package emotion

import (
	"fmt"
	"strings"
)

const grammarPromptTemplate = `Create a poetic sentence using this grammatical structure:
%s

Rules:
- Respect grammatical order.
- Be poetic.
- Be abstract.
Output only the sentence, no explanation.`

const functionPromptTemplate = `Create one coherent poetic sentence.
Follow these structural rules (in order):
%s

Output only the sentence, no explanation.`

// defaultGrammarStructure stands in when no labels have been classified yet.
var defaultGrammarStructure = []Tag{"adjective", "noun", "verb"}

// defaultFunctionStructure keeps an empty window from producing degenerate
// generation instructions.
var defaultFunctionStructure = []Tag{"syntagmatic"}

// Prompt builds the generation prompt for an ordered tag sequence. The
// result is never empty: an empty sequence substitutes the mode's default
// structure. The prompt instructs the backend to respect tag ordering,
// produce exactly one sentence, and emit no preamble, because the returned
// text is displayed verbatim.
func (m Mode) Prompt(tags []Tag) string {
	if m == ModeGrammatical {
		if len(tags) == 0 {
			tags = defaultGrammarStructure
		}
		parts := make([]string, len(tags))
		for i, tag := range tags {
			parts[i] = string(tag)
		}
		return fmt.Sprintf(grammarPromptTemplate, strings.Join(parts, " "))
	}

	if len(tags) == 0 {
		tags = defaultFunctionStructure
	}
	rules := make([]string, len(tags))
	for i, tag := range tags {
		rules[i] = "- " + InstructionFor(tag)
	}
	return fmt.Sprintf(functionPromptTemplate, strings.Join(rules, "\n"))
}
