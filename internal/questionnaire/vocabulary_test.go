package questionnaire

import (
	"testing"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_Select(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "blank", input: "  ", want: []string{}},
		{name: "numbers", input: "1, 3", want: []string{"Technology", "Art"}},
		{name: "labels", input: "Finance,Law", want: []string{"Finance", "Law"}},
		{name: "mixed and duplicate", input: "2,Finance,1", want: []string{"Finance", "Technology"}},
		{name: "out of range", input: "9", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "unknown label", input: "Cooking", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interests.Select(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidAnswer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary_SelectOne(t *testing.T) {
	got, err := Personality[1].SelectOne("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = Personality[1].SelectOne("2")
	require.NoError(t, err)
	assert.Equal(t, "Creative", got)

	got, err = Personality[2].SelectOne("Neutral")
	require.NoError(t, err)
	assert.Equal(t, "Neutral", got)

	_, err = Personality[0].SelectOne("Maybe")
	require.ErrorIs(t, err, common.ErrInvalidAnswer)
}

func TestVocabularies_CoverRuleLabels(t *testing.T) {
	assert.True(t, Interests.Contains("Technology"))
	assert.True(t, Interests.Contains("Finance"))
	assert.True(t, Interests.Contains("Art"))
	assert.True(t, Activities.Contains("Analyzing data"))
	assert.True(t, Strengths.Contains("Problem-solving"))
	assert.True(t, Strengths.Contains("Creativity"))
	assert.True(t, Strengths.Contains("Communication"))
	assert.True(t, WorkValues.Contains("Helping Others"))
}
