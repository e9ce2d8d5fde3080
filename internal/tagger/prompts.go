package tagger

// AnalysisPrompt is the user prompt template for category tagging.
// The single verb is the quote text.
const AnalysisPrompt = `Analyze the following quote based on the categories below. For each category, list it if the quote fits; otherwise, ignore it. Return only the relevant categories as a comma-separated list:

Quote: "%s"

Categories and Instructions:
- Concreteness: Is the language specific and tangible, using concrete nouns or verbs?
- Arousal: Does the quote provoke an emotional reaction or excitement?
- Valence: Does the quote have a positive or negative emotional tone?
- Humor: Is there any element of wit, irony, or humor in the quote?
- Semantics: Is the quote deep, meaningful, or thought-provoking in terms of ideas or concepts?
- Imagery: Does the quote create vivid mental images or use descriptive language?
- Simplicity: Is the language straightforward, easy to understand, or uncomplicated?

Return only the applicable categories, separated by commas. Do not include additional explanations or words.`
