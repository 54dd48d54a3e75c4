package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"empman/internal/domain/employee"
)

var (
	weeksPerYear = decimal.NewFromInt(52)
	hundred      = decimal.NewFromInt(100)
)

// WeeklyPay returns one week's share of the annual salary less the weekly
// benefit deduction, before and after tax. A deduction larger than the weekly
// share yields negative figures.
func WeeklyPay(s *employee.Salaried) (gross, net decimal.Decimal) {
	gross = s.AnnualSalary.Div(weeksPerYear).Sub(s.WeeklyBenefitDeduction)
	return gross, afterTax(gross, s.TaxRatePercent)
}

func Pay(h *employee.Hourly) (gross, net decimal.Decimal) {
	gross = h.HourlyRate.Mul(h.HoursWorked)
	return gross, afterTax(gross, h.TaxRatePercent)
}

func afterTax(gross, taxRatePercent decimal.Decimal) decimal.Decimal {
	return gross.Mul(decimal.NewFromInt(1).Sub(taxRatePercent.Div(hundred)))
}

func Summarize(r employee.Record) (Summary, error) {
	p := r.Identity()
	summary := Summary{Role: p.Role, Name: p.Name, ID: p.ID}
	switch rec := r.(type) {
	case *employee.Salaried:
		summary.Period = PeriodWeekly
		summary.Gross, summary.Net = WeeklyPay(rec)
	case *employee.Hourly:
		summary.Period = PeriodWorked
		summary.Gross, summary.Net = Pay(rec)
	default:
		return Summary{}, fmt.Errorf("%w: %T", ErrUnsupportedRecord, r)
	}
	return summary, nil
}

// FormatPay renders the pay line shown under a record.
func FormatPay(r employee.Record) (string, error) {
	summary, err := Summarize(r)
	if err != nil {
		return "", err
	}
	if summary.Period == PeriodWeekly {
		return fmt.Sprintf("Weekly Gross Pay: %s, Weekly Net Pay: %s",
			employee.FormatAmount(summary.Gross), employee.FormatAmount(summary.Net)), nil
	}
	return fmt.Sprintf("Gross Pay: %s, Net Pay: %s",
		summary.Gross.String(), employee.FormatAmount(summary.Net)), nil
}
