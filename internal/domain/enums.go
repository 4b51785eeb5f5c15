package domain

// Field names one editable part of a Configuration.
type Field string

const (
	FieldSubject        Field = "subject"
	FieldLength         Field = "length"
	FieldEducationLevel Field = "educationLevel"
	FieldCustomTopic    Field = "customTopic"
)

// RequiredFields lists the fields that must be set before generation, in
// the order the pickers are presented.
var RequiredFields = []Field{FieldSubject, FieldLength, FieldEducationLevel}

// Label returns a human-readable name for the field.
func (f Field) Label() string {
	switch f {
	case FieldSubject:
		return "Subject"
	case FieldLength:
		return "Length"
	case FieldEducationLevel:
		return "Education Level"
	case FieldCustomTopic:
		return "Custom Topic"
	default:
		return string(f)
	}
}

// ParseField maps a field name (as used in flags and JSON) to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldSubject, FieldLength, FieldEducationLevel, FieldCustomTopic:
		return Field(s), nil
	}
	switch s {
	case "level", "education-level":
		return FieldEducationLevel, nil
	case "topic", "custom-topic":
		return FieldCustomTopic, nil
	}
	return "", ErrUnknownField
}
