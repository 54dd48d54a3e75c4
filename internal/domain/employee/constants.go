package employee

type Field string

const (
	FieldAnnualSalary           Field = "annual_salary"
	FieldWeeklyBenefitDeduction Field = "weekly_benefit_deduction"
	FieldHourlyRate             Field = "hourly_rate"
	FieldHoursWorked            Field = "hours_worked"
	FieldTaxRatePercent         Field = "tax_rate_percent"
)

var fieldLabels = map[Field]string{
	FieldAnnualSalary:           "salary",
	FieldWeeklyBenefitDeduction: "benefits amount to be subtracted weekly",
	FieldHourlyRate:             "hourly rate",
	FieldHoursWorked:            "hours worked",
	FieldTaxRatePercent:         "tax rate (%)",
}

// Label is the operator-facing name of the field.
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// RoleFields lists the numeric fields of a role in prompt order. It returns
// nil for an unknown role.
func RoleFields(role Role) []Field {
	switch role {
	case RoleSalaried:
		return []Field{FieldAnnualSalary, FieldWeeklyBenefitDeduction, FieldTaxRatePercent}
	case RoleHourly:
		return []Field{FieldHourlyRate, FieldHoursWorked, FieldTaxRatePercent}
	default:
		return nil
	}
}
