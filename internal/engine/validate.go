package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/promptfoundry/promptfoundry/internal/model"
)

// MinGoalLength is the minimum length of Intake.Goal in UTF-16 code units.
const MinGoalLength = 6

// Validation messages.
const (
	msgGoal      = "Describe the prompt's goal."
	msgMalformed = "Malformed JSON body."
)

// IntakeInput is the raw, unvalidated shape of an intake. Nil fields were not
// provided by the caller.
type IntakeInput struct {
	Goal        *string `json:"goal" validate:"required,textmin=6"`
	Context     *string `json:"context"`
	Tone        *string `json:"tone"`
	Constraints *string `json:"constraints"`
	Format      *string `json:"format"`
	Audience    *string `json:"audience"`
}

var intakeFields = []string{"goal", "context", "tone", "constraints", "format", "audience"}

// IntakeValidator turns raw input into a normalized Intake or a
// *model.ValidationError listing every violation.
type IntakeValidator struct {
	v *validator.Validate
}

// NewIntakeValidator creates a validator that reports fields by their JSON names.
func NewIntakeValidator() *IntakeValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("textmin", textMin)
	return &IntakeValidator{v: v}
}

// textMin checks a string field against a minimum length in UTF-16 code units.
func textMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return textLength(fl.Field().String()) >= n
}

// ValidateJSON decodes raw as an intake object and validates it. Malformed
// JSON and non-object bodies are reported as form errors; fields of the wrong
// type are reported per field.
func (iv *IntakeValidator) ValidateJSON(raw []byte) (model.Intake, error) {
	verr := model.NewValidationError()

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) || !json.Valid(raw) {
			verr.AddForm(msgMalformed)
		} else {
			verr.AddForm("Expected object, received " + jsonKind(raw))
		}
		return model.Intake{}, verr
	}
	if obj == nil {
		verr.AddForm("Expected object, received null")
		return model.Intake{}, verr
	}

	var in IntakeInput
	targets := map[string]**string{
		"goal":        &in.Goal,
		"context":     &in.Context,
		"tone":        &in.Tone,
		"constraints": &in.Constraints,
		"format":      &in.Format,
		"audience":    &in.Audience,
	}
	for _, name := range intakeFields {
		rawField, ok := obj[name]
		if !ok {
			continue
		}
		var s string
		if kind := jsonKind(rawField); kind != "string" {
			verr.AddField(name, "Expected string, received "+kind)
			continue
		}
		if err := json.Unmarshal(rawField, &s); err != nil {
			verr.AddField(name, "Expected string, received "+jsonKind(rawField))
			continue
		}
		*targets[name] = &s
	}

	intake, err := iv.validate(in, verr)
	if err != nil {
		return model.Intake{}, err
	}
	return intake, nil
}

// ValidateInput validates an already-decoded intake.
func (iv *IntakeValidator) ValidateInput(in IntakeInput) (model.Intake, error) {
	return iv.validate(in, model.NewValidationError())
}

func (iv *IntakeValidator) validate(in IntakeInput, verr *model.ValidationError) (model.Intake, error) {
	// A goal of the wrong type already carries its own message.
	_, goalTyped := verr.FieldErrors["goal"]
	if err := iv.v.Struct(in); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return model.Intake{}, err
		}
		for _, fe := range ves {
			if fe.Field() == "goal" {
				if !goalTyped {
					verr.AddField("goal", msgGoal)
				}
				continue
			}
			verr.AddField(fe.Field(), "Invalid value.")
		}
	}
	if !verr.Empty() {
		return model.Intake{}, verr
	}
	return model.Intake{
		Goal:        *in.Goal,
		Context:     in.Context,
		Tone:        in.Tone,
		Constraints: in.Constraints,
		Format:      in.Format,
		Audience:    in.Audience,
	}, nil
}

// jsonKind names the JSON type of a raw value.
func jsonKind(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
