package llm

import "testing"

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		models map[string]string
		want   string
	}{
		{"friendly name", "claude-haiku", anthropicModels, "claude-haiku-4-5-20251001"},
		{"anthropic fast tier", "fast", anthropicModels, "claude-haiku-4-5-20251001"},
		{"openai best tier", "best", openaiModels, "gpt-4.1"},
		{"gemini fast tier", "fast", geminiModels, "gemini-2.5-flash-lite"},
		{"direct ID passes through", "claude-opus-4-5-20251101", anthropicModels, "claude-opus-4-5-20251101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveModel(tt.input, tt.models); got != tt.want {
				t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
