package scoring

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechmetrics/commscore/internal/apperr"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantCount  int
		wantErr    string
	}{
		{
			name:       "exactly at minimum",
			transcript: words(10),
			wantCount:  10,
		},
		{
			name:       "exactly at maximum",
			transcript: words(500),
			wantCount:  500,
		},
		{
			name:       "one word short",
			transcript: words(9),
			wantCount:  9,
			wantErr:    "Transcript must contain at least 10 words",
		},
		{
			name:       "one word over",
			transcript: words(501),
			wantCount:  501,
			wantErr:    "Transcript exceeds maximum length of 500 words",
		},
		{
			name:       "empty transcript",
			transcript: "",
			wantCount:  0,
			wantErr:    "Transcript must contain at least 10 words",
		},
		{
			name:       "punctuation stays attached to its word",
			transcript: "one, two. three! four? five; six: seven eight nine ten",
			wantCount:  10,
		},
	}

	b := DefaultBounds()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := b.Validate(tt.transcript)

			assert.Equal(t, tt.wantCount, count)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve), "want ValidationError, got %T", err)
			assert.Equal(t, tt.wantErr, ve.Message)
		})
	}
}

func TestBounds_Validate_CustomRange(t *testing.T) {
	b := Bounds{MinWords: 3, MaxWords: 5}

	_, err := b.Validate("just two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 3 words")

	count, err := b.Validate("three words exactly here")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = b.Validate("one two three four five six")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum length of 5 words")
}
