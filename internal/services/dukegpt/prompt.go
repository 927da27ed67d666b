package dukegpt

// GeneratorSystemPrompt frames every generation request. The renderer shows
// the reply verbatim, so the model must not add commentary.
const GeneratorSystemPrompt = "You are a poetic generator. Output only the requested sentence, no explanation or preamble."
