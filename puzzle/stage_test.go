package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	valid := []struct {
		text string
		want Stage
	}{
		{"0", First},
		{"first", First},
		{"1", Second},
		{"second", Second},
	}
	for _, tt := range valid {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseStage(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{"", "2", "-1", "First", "SECOND", " first", "third", "01"}
	for _, text := range invalid {
		t.Run("invalid "+text, func(t *testing.T) {
			_, err := ParseStage(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidStage))

			var spe *StageParseError
			require.ErrorAs(t, err, &spe)
			assert.Equal(t, text, spe.Text)
			assert.Contains(t, err.Error(), "could not parse stage")
		})
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "first", First.String())
	assert.Equal(t, "second", Second.String())
	assert.Equal(t, "stage(7)", Stage(7).String())
}

func TestStageRoundTripsThroughString(t *testing.T) {
	for _, s := range []Stage{First, Second} {
		got, err := ParseStage(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
