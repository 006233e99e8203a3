package rubric

// Default returns the built-in communication rubric used when no external
// source is configured. Callers get a fresh copy each time so a shared rubric
// can never be mutated through it.
func Default() Rubric {
	return Rubric{Criteria: []Criterion{
		{
			Name:        "Clarity and Articulation",
			Description: "Clear pronunciation and well-structured sentences",
			Keywords:    []string{"clear", "articulate", "precise", "understandable", "coherent", "structured", "organized", "logical"},
			Weight:      0.25,
			MinWords:    50,
			MaxWords:    500,
		},
		{
			Name:        "Content Quality",
			Description: "Relevant, informative, and well-organized content",
			Keywords:    []string{"relevant", "informative", "detailed", "organized", "evidence", "examples", "facts", "data", "analysis"},
			Weight:      0.30,
			MinWords:    50,
			MaxWords:    500,
		},
		{
			Name:        "Engagement",
			Description: "Ability to maintain audience interest and connect",
			Keywords:    []string{"engaging", "interesting", "compelling", "attention", "enthusiasm", "dynamic", "passionate", "captivating"},
			Weight:      0.20,
			MinWords:    50,
			MaxWords:    500,
		},
		{
			Name:        "Language Proficiency",
			Description: "Proper grammar, vocabulary, and language use",
			Keywords:    []string{"vocabulary", "grammar", "language", "professional", "appropriate", "fluent", "eloquent", "articulate"},
			Weight:      0.25,
			MinWords:    50,
			MaxWords:    500,
		},
	}}
}
