package model

// Intake is a validated description of the prompt the user wants generated.
// Optional fields are nil when the caller did not provide them; an empty
// string is a provided value.
type Intake struct {
	Goal        string  `json:"goal"`
	Context     *string `json:"context,omitempty"`
	Tone        *string `json:"tone,omitempty"`
	Constraints *string `json:"constraints,omitempty"`
	Format      *string `json:"format,omitempty"`
	Audience    *string `json:"audience,omitempty"`
}

// Or returns the dereferenced value of s, or fallback when s is nil or empty.
func Or(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}
