package intake

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/nextstep/internal/decision"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError is one rejected intake answer.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every rejected answer in an intake.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "intake: " + strings.Join(parts, "; ")
}

// Validate checks a finalized intake against the answer constraints.
func Validate(in decision.Intake) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("intake: %w", err)
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldName(fe.StructField()),
			Message: describe(fe),
		})
	}
	return out
}

func fieldName(structField string) string {
	switch structField {
	case "Zip":
		return string(KeyZip)
	case "HouseholdSize":
		return string(KeyHouseholdSize)
	case "TakeHomeBand":
		return string(KeyTakeHomeBand)
	case "HighAPRDebt":
		return string(KeyHighAPRDebt)
	case "EmployerMatch":
		return string(KeyEmployerMatch)
	case "EFMonths":
		return string(KeyEFMonths)
	}
	return structField
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	}
	return fmt.Sprintf("failed %s check", fe.Tag())
}

// ParseYAML decodes an answer file into a draft.
func ParseYAML(data []byte) (Draft, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Draft{}, fmt.Errorf("intake: answer file is empty")
	}
	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("intake: decode: %w", err)
	}
	d.Zip = CleanZip(d.Zip)
	return d, nil
}

// LoadFile reads an answer file and returns the finalized, validated intake.
func LoadFile(path string) (decision.Intake, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return decision.Intake{}, fmt.Errorf("intake: read %s: %w", path, err)
	}
	d, err := ParseYAML(content)
	if err != nil {
		return decision.Intake{}, err
	}
	in, ok := d.Complete()
	if !ok {
		if err := Validate(partialIntake(d)); err != nil {
			return decision.Intake{}, err
		}
		return decision.Intake{}, fmt.Errorf("intake: %s is incomplete", path)
	}
	if err := Validate(in); err != nil {
		return decision.Intake{}, err
	}
	return in, nil
}

// partialIntake copies whatever is answered so validation can name the gaps.
func partialIntake(d Draft) decision.Intake {
	in := decision.Intake{
		Zip:           d.Zip,
		TakeHomeBand:  d.TakeHomeBand,
		HighAPRDebt:   d.HighAPRDebt,
		EmployerMatch: d.EmployerMatch,
		EFMonths:      d.EFMonths,
	}
	if d.HouseholdSize != nil {
		in.HouseholdSize = *d.HouseholdSize
	}
	return in
}
