package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

func TestValidateJSON_Valid(t *testing.T) {
	iv := NewIntakeValidator()

	in, err := iv.ValidateJSON([]byte(`{"goal":"Announce a product launch","tone":"","extra":42}`))
	require.NoError(t, err)
	assert.Equal(t, "Announce a product launch", in.Goal)
	require.NotNil(t, in.Tone)
	assert.Equal(t, "", *in.Tone, "empty string is a provided value")
	assert.Nil(t, in.Context, "absent field stays nil")
	assert.Nil(t, in.Audience)
}

func TestValidateJSON_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantForm   []string
		wantFields map[string][]string
	}{
		{
			name:       "missing goal",
			body:       `{}`,
			wantForm:   []string{},
			wantFields: map[string][]string{"goal": {msgGoal}},
		},
		{
			name:       "short goal",
			body:       `{"goal":"hello"}`,
			wantForm:   []string{},
			wantFields: map[string][]string{"goal": {msgGoal}},
		},
		{
			name:     "wrong types enumerated",
			body:     `{"goal":12345678,"tone":true,"format":null}`,
			wantForm: []string{},
			wantFields: map[string][]string{
				"goal":   {"Expected string, received number"},
				"tone":   {"Expected string, received boolean"},
				"format": {"Expected string, received null"},
			},
		},
		{
			name:     "short goal and bad audience",
			body:     `{"goal":"abc","audience":["x"]}`,
			wantForm: []string{},
			wantFields: map[string][]string{
				"goal":     {msgGoal},
				"audience": {"Expected string, received array"},
			},
		},
		{
			name:       "malformed json",
			body:       `{"goal":`,
			wantForm:   []string{msgMalformed},
			wantFields: map[string][]string{},
		},
		{
			name:       "empty body",
			body:       ``,
			wantForm:   []string{msgMalformed},
			wantFields: map[string][]string{},
		},
		{
			name:       "array body",
			body:       `["goal"]`,
			wantForm:   []string{"Expected object, received array"},
			wantFields: map[string][]string{},
		},
		{
			name:       "null body",
			body:       `null`,
			wantForm:   []string{"Expected object, received null"},
			wantFields: map[string][]string{},
		},
	}

	iv := NewIntakeValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iv.ValidateJSON([]byte(tt.body))
			require.Error(t, err)

			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr), "error is %T", err)
			if diff := cmp.Diff(tt.wantForm, verr.FormErrors); diff != "" {
				t.Errorf("form errors (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantFields, verr.FieldErrors); diff != "" {
				t.Errorf("field errors (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateInput_GoalLengthCountsUTF16Units(t *testing.T) {
	iv := NewIntakeValidator()

	_, err := iv.ValidateJSON([]byte(`{"goal":"😀😀😀"}`))
	assert.NoError(t, err, "three astral characters are six code units")

	_, err = iv.ValidateJSON([]byte(`{"goal":"😀😀"}`))
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Describe the prompt's goal."}, verr.FieldErrors["goal"])

	_, err = iv.ValidateInput(IntakeInput{Goal: model.Ptr("éèàùçô")})
	assert.NoError(t, err, "six accented characters meet the minimum")

	_, err = iv.ValidateInput(IntakeInput{Goal: model.Ptr("éèàùç")})
	assert.Error(t, err)

	_, err = iv.ValidateInput(IntakeInput{})
	assert.Error(t, err)
}
