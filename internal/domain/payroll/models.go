package payroll

import (
	"github.com/shopspring/decimal"

	"empman/internal/domain/employee"
)

type Summary struct {
	Role   employee.Role   `json:"role"`
	Name   string          `json:"name"`
	ID     string          `json:"id"`
	Period string          `json:"period"`
	Gross  decimal.Decimal `json:"gross"`
	Net    decimal.Decimal `json:"net"`
}
