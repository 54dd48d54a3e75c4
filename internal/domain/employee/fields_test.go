package employee

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleSalaried() *Salaried {
	return NewSalaried("Ada", "E1",
		decimal.RequireFromString("52000"),
		decimal.RequireFromString("50"),
		decimal.RequireFromString("20"))
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"salaried":  RoleSalaried,
		"Full-Time": RoleSalaried,
		" hourly ":  RoleHourly,
		"part-time": RoleHourly,
	}
	for input, want := range cases {
		got, err := ParseRole(input)
		if err != nil {
			t.Fatalf("role %q: unexpected error: %v", input, err)
		}
		if got != want {
			t.Fatalf("role %q: expected %s, got %s", input, want, got)
		}
	}
	if _, err := ParseRole("contractor"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestBuildSalaried(t *testing.T) {
	r, err := Build(RoleSalaried, "Ada", "E1", Fields{
		FieldAnnualSalary:           "52,000",
		FieldWeeklyBenefitDeduction: "50",
		FieldTaxRatePercent:         "20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := r.(*Salaried)
	if !ok {
		t.Fatalf("expected *Salaried, got %T", r)
	}
	if !s.AnnualSalary.Equal(decimal.NewFromInt(52000)) {
		t.Fatalf("expected salary 52000, got %s", s.AnnualSalary)
	}
	if s.Role != RoleSalaried || s.Name != "Ada" || s.ID != "E1" {
		t.Fatalf("unexpected profile %+v", s.Profile)
	}
}

func TestBuildErrors(t *testing.T) {
	full := Fields{FieldHourlyRate: "20", FieldHoursWorked: "40", FieldTaxRatePercent: "10"}

	if _, err := Build(Role("Contractor"), "Lin", "H1", full); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := Build(RoleHourly, " ", "H1", full); !errors.Is(err, ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField for name, got %v", err)
	}
	if _, err := Build(RoleHourly, "Lin", "", full); !errors.Is(err, ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField for id, got %v", err)
	}
	if _, err := Build(RoleHourly, "Lin", "H1", Fields{FieldHourlyRate: "20", FieldTaxRatePercent: "10"}); !errors.Is(err, ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField for hours, got %v", err)
	}
	if _, err := Build(RoleHourly, "Lin", "H1", Fields{FieldHourlyRate: "twenty", FieldHoursWorked: "40", FieldTaxRatePercent: "10"}); !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("expected ErrInvalidDecimal, got %v", err)
	}
	if _, err := Build(RoleHourly, "Lin", "H1", Fields{FieldHourlyRate: "20", FieldHoursWorked: "40", FieldTaxRatePercent: "10", FieldAnnualSalary: "1"}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestUpdateFieldsEmptyIsNoop(t *testing.T) {
	s := sampleSalaried()
	before := *s

	if err := UpdateFields(s, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := UpdateFields(s, Fields{FieldAnnualSalary: "", FieldTaxRatePercent: "  "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AnnualSalary.String() != before.AnnualSalary.String() ||
		s.WeeklyBenefitDeduction.String() != before.WeeklyBenefitDeduction.String() ||
		s.TaxRatePercent.String() != before.TaxRatePercent.String() {
		t.Fatalf("expected record unchanged, got %+v", s)
	}
}

func TestUpdateFieldsOnlySupplied(t *testing.T) {
	s := sampleSalaried()

	if err := UpdateFields(s, Fields{FieldTaxRatePercent: "25"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.TaxRatePercent.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected tax rate 25, got %s", s.TaxRatePercent)
	}
	if !s.AnnualSalary.Equal(decimal.NewFromInt(52000)) || !s.WeeklyBenefitDeduction.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected salary and benefits unchanged, got %s and %s", s.AnnualSalary, s.WeeklyBenefitDeduction)
	}
}

func TestUpdateFieldsZeroIsAValue(t *testing.T) {
	s := sampleSalaried()
	if err := UpdateFields(s, Fields{FieldWeeklyBenefitDeduction: "0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.WeeklyBenefitDeduction.IsZero() {
		t.Fatalf("expected benefits 0, got %s", s.WeeklyBenefitDeduction)
	}
}

func TestUpdateFieldsFailureLeavesRecordUntouched(t *testing.T) {
	s := sampleSalaried()
	err := UpdateFields(s, Fields{FieldAnnualSalary: "60000", FieldTaxRatePercent: "1.2.3"})
	if !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("expected ErrInvalidDecimal, got %v", err)
	}
	if !s.AnnualSalary.Equal(decimal.NewFromInt(52000)) {
		t.Fatalf("expected salary unchanged, got %s", s.AnnualSalary)
	}

	h := NewHourly("Lin", "H1", decimal.NewFromInt(20), decimal.NewFromInt(40), decimal.NewFromInt(10))
	if err := UpdateFields(h, Fields{FieldAnnualSalary: "1"}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestDescribeAndPayDetails(t *testing.T) {
	s := sampleSalaried()
	if got := Describe(s); got != "Role: Salaried, Name: Ada, ID: E1" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := s.PayDetails(); got != "Salary: 52,000.00, Benefits: 50, Tax Rate: 20" {
		t.Fatalf("unexpected pay details %q", got)
	}

	h := NewHourly("Lin", "H1", decimal.RequireFromString("20.5"), decimal.NewFromInt(40), decimal.NewFromInt(10))
	if got := Describe(h); got != "Role: Hourly, Name: Lin, ID: H1" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := h.PayDetails(); got != "Hourly Rate: 20.5, Hours Worked: 40, Tax Rate: 10" {
		t.Fatalf("unexpected pay details %q", got)
	}
}

func TestRoleFields(t *testing.T) {
	if got := RoleFields(RoleSalaried); len(got) != 3 || got[0] != FieldAnnualSalary {
		t.Fatalf("unexpected salaried fields %v", got)
	}
	if got := RoleFields(RoleHourly); len(got) != 3 || got[0] != FieldHourlyRate {
		t.Fatalf("unexpected hourly fields %v", got)
	}
	if RoleFields(Role("x")) != nil {
		t.Fatal("expected nil fields for unknown role")
	}
	if FieldTaxRatePercent.Label() != "tax rate (%)" {
		t.Fatalf("unexpected label %q", FieldTaxRatePercent.Label())
	}
}
