package sentence

// Block is one sentence as it appears in a CoNLL-U stream: the comment lines
// that precede it and its token lines, both kept verbatim.
type Block struct {
	// Index is the 1-based position of the sentence in the stream.
	Index int

	// Id is the value of the `# sent_id` comment, or the Index when the
	// sentence carries no usable identifier.
	Id string

	Comments []string
	Lines    []string

	// EndLine is the stream line number where the sentence ended: the
	// terminating blank line, or the last line of the stream.
	EndLine int
}

// Token represents a word of the sentence, with the ten CoNLL-U columns.
type Token struct {
	Id   int    `json:"id"`
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Universal and language specific POS tags
	Upos string `json:"upos"`
	Xpos string `json:"xpos"`

	Feats string `json:"feats"`

	// The id of the governor, 0 for the root of the sentence.
	Head   int    `json:"head"`
	Deprel string `json:"deprel"`
	Deps   string `json:"deps"`
	Misc   string `json:"misc"`

	// the 1-based line of the token within its sentence
	Line int `json:"line"`
}
