package payroll

const (
	PeriodWeekly = "weekly"
	PeriodWorked = "hours worked"
)
