package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Summary string   `json:"summary"`
		Items   []string `json:"items"`
	}

	tests := []struct {
		name    string
		input   string
		want    payload
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"summary": "done", "items": ["a"]}`,
			want:  payload{Summary: "done", Items: []string{"a"}},
		},
		{
			name:  "json fenced block",
			input: "```json\n{\"summary\": \"done\", \"items\": []}\n```",
			want:  payload{Summary: "done", Items: []string{}},
		},
		{
			name:  "plain fenced block",
			input: "```\n{\"summary\": \"done\", \"items\": []}\n```",
			want:  payload{Summary: "done", Items: []string{}},
		},
		{
			name:  "prose around object",
			input: "Here is the result you asked for:\n{\"summary\": \"done\", \"items\": []}\nHope that helps!",
			want:  payload{Summary: "done", Items: []string{}},
		},
		{
			name:    "no object at all",
			input:   "I could not produce a summary.",
			wantErr: true,
		},
		{
			name:    "malformed object",
			input:   `{"summary": "done",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := decodeJSON(tt.input, &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
