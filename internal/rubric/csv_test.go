package rubric

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechmetrics/commscore/internal/apperr"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"name,description,keywords,weight,min_words,max_words",
		`Clarity,Clear delivery,"clear, concise",0.6,20,200`,
		`Engagement,Holds attention,"engaging, dynamic",0.4,,`,
	}, "\n")

	rb, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rb.Criteria, 2)

	assert.Equal(t, Criterion{
		Name:        "Clarity",
		Description: "Clear delivery",
		Keywords:    []string{"clear", "concise"},
		Weight:      0.6,
		MinWords:    20,
		MaxWords:    200,
	}, rb.Criteria[0])

	assert.Equal(t, "Engagement", rb.Criteria[1].Name)
	assert.Equal(t, []string{"engaging", "dynamic"}, rb.Criteria[1].Keywords)
	assert.Equal(t, DefaultMinWords, rb.Criteria[1].MinWords)
	assert.Equal(t, DefaultMaxWords, rb.Criteria[1].MaxWords)
}

func TestParseCSV_HeaderCaseInsensitive(t *testing.T) {
	input := strings.Join([]string{
		"Name, Description ,Keywords,Weight,Min_Words,Max_Words",
		"Clarity,desc,clear,1.0,10,100",
	}, "\n")

	rb, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rb.Criteria, 1)
	assert.Equal(t, "Clarity", rb.Criteria[0].Name)
	assert.Equal(t, 10, rb.Criteria[0].MinWords)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name: "invalid weight",
			input: "name,description,keywords,weight,min_words,max_words\n" +
				"Clarity,desc,clear,heavy,10,100",
		},
		{
			name: "invalid min_words",
			input: "name,description,keywords,weight,min_words,max_words\n" +
				"Clarity,desc,clear,1.0,ten,100",
		},
		{
			name: "weights do not sum to one",
			input: "name,description,keywords,weight,min_words,max_words\n" +
				"Clarity,desc,clear,0.55,10,100\n" +
				"Engagement,desc,engaging,0.50,10,100",
		},
		{
			name: "min exceeds max",
			input: "name,description,keywords,weight,min_words,max_words\n" +
				"Clarity,desc,clear,1.0,200,100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))

			require.Error(t, err)

			var re *apperr.RubricError
			assert.True(t, errors.As(err, &re), "expected RubricError, got %T", err)
		})
	}
}
