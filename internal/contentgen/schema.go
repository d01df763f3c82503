package contentgen

import "github.com/meera/courseforge/internal/llm"

// ReadingSchema defines the JSON schema for generated reading content.
var ReadingSchema = &llm.Schema{
	Name:        "reading-content",
	Description: "Instructional reading text for one course activity",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The full reading text in plain prose. No markdown headings, no front matter.",
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for generated quiz content. Its
// shape matches the quiz payload embedded in quiz activities, so the
// LLM response can be stored as activity content directly.
var QuizSchema = &llm.Schema{
	Name:        "quiz-content",
	Description: "A multiple-choice quiz assessing the activity's learning outcomes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The quiz questions in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question stem shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "3-4 answer options with exactly one marked correct",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"text": map[string]any{
										"type":        "string",
										"description": "The option text. Distractors must be plausible, at least 5 characters, and clearly distinct from the correct answer.",
									},
									"is_correct": map[string]any{
										"type": "boolean",
									},
								},
								"required":             []any{"text", "is_correct"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"question_text", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
