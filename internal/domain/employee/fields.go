package employee

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Fields carries raw operator text keyed by field. A missing or blank entry
// means "not supplied".
type Fields map[Field]string

func ParseRole(text string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "salaried", "full-time":
		return RoleSalaried, nil
	case "hourly", "part-time":
		return RoleHourly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, text)
	}
}

// Build validates and parses every field for role and returns the new record.
func Build(role Role, name, id string, fields Fields) (Record, error) {
	allowed := RoleFields(role)
	if allowed == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	name = strings.TrimSpace(name)
	id = strings.TrimSpace(id)
	if name == "" {
		return nil, fmt.Errorf("name: %w", ErrRequiredField)
	}
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrRequiredField)
	}

	values, err := parseFields(allowed, fields, true)
	if err != nil {
		return nil, err
	}

	switch role {
	case RoleSalaried:
		return NewSalaried(name, id, values[FieldAnnualSalary], values[FieldWeeklyBenefitDeduction], values[FieldTaxRatePercent]), nil
	default:
		return NewHourly(name, id, values[FieldHourlyRate], values[FieldHoursWorked], values[FieldTaxRatePercent]), nil
	}
}

// UpdateFields overwrites only the supplied, non-blank fields. All values are
// parsed before any is written, so a failure leaves the record untouched.
func UpdateFields(r Record, fields Fields) error {
	values, err := parseFields(RoleFields(r.Identity().Role), fields, false)
	if err != nil {
		return err
	}
	r.apply(values)
	return nil
}

func parseFields(allowed []Field, fields Fields, required bool) (map[Field]decimal.Decimal, error) {
	for field := range fields {
		if !slices.Contains(allowed, field) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	values := make(map[Field]decimal.Decimal, len(allowed))
	for _, field := range allowed {
		raw, ok := fields[field]
		if !ok || strings.TrimSpace(raw) == "" {
			if required {
				return nil, fmt.Errorf("%s: %w", field, ErrRequiredField)
			}
			continue
		}
		value, err := ParseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		values[field] = value
	}
	return values, nil
}
