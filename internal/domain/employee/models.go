package employee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleSalaried Role = "Salaried"
	RoleHourly   Role = "Hourly"
)

// Profile holds the attributes every record carries regardless of how the
// employee is paid.
type Profile struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (p Profile) Identity() Profile {
	return p
}

// Record is implemented only by *Salaried and *Hourly.
type Record interface {
	Identity() Profile
	PayDetails() string
	apply(values map[Field]decimal.Decimal)
}

type Salaried struct {
	Profile
	AnnualSalary           decimal.Decimal `json:"annualSalary"`
	WeeklyBenefitDeduction decimal.Decimal `json:"weeklyBenefitDeduction"`
	TaxRatePercent         decimal.Decimal `json:"taxRatePercent"`
}

type Hourly struct {
	Profile
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	HoursWorked    decimal.Decimal `json:"hoursWorked"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

func NewSalaried(name, id string, annualSalary, weeklyBenefitDeduction, taxRatePercent decimal.Decimal) *Salaried {
	return &Salaried{
		Profile:                Profile{Role: RoleSalaried, Name: name, ID: id},
		AnnualSalary:           annualSalary,
		WeeklyBenefitDeduction: weeklyBenefitDeduction,
		TaxRatePercent:         taxRatePercent,
	}
}

func NewHourly(name, id string, hourlyRate, hoursWorked, taxRatePercent decimal.Decimal) *Hourly {
	return &Hourly{
		Profile:        Profile{Role: RoleHourly, Name: name, ID: id},
		HourlyRate:     hourlyRate,
		HoursWorked:    hoursWorked,
		TaxRatePercent: taxRatePercent,
	}
}

// Describe renders the identity line shown for a record and written to the
// action log.
func Describe(r Record) string {
	p := r.Identity()
	return fmt.Sprintf("Role: %s, Name: %s, ID: %s", p.Role, p.Name, p.ID)
}

func (s *Salaried) PayDetails() string {
	return fmt.Sprintf("Salary: %s, Benefits: %s, Tax Rate: %s",
		FormatAmount(s.AnnualSalary), s.WeeklyBenefitDeduction.String(), s.TaxRatePercent.String())
}

func (h *Hourly) PayDetails() string {
	return fmt.Sprintf("Hourly Rate: %s, Hours Worked: %s, Tax Rate: %s",
		h.HourlyRate.String(), h.HoursWorked.String(), h.TaxRatePercent.String())
}

func (s *Salaried) apply(values map[Field]decimal.Decimal) {
	if v, ok := values[FieldAnnualSalary]; ok {
		s.AnnualSalary = v
	}
	if v, ok := values[FieldWeeklyBenefitDeduction]; ok {
		s.WeeklyBenefitDeduction = v
	}
	if v, ok := values[FieldTaxRatePercent]; ok {
		s.TaxRatePercent = v
	}
}

func (h *Hourly) apply(values map[Field]decimal.Decimal) {
	if v, ok := values[FieldHourlyRate]; ok {
		h.HourlyRate = v
	}
	if v, ok := values[FieldHoursWorked]; ok {
		h.HoursWorked = v
	}
	if v, ok := values[FieldTaxRatePercent]; ok {
		h.TaxRatePercent = v
	}
}
