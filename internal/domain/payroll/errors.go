package payroll

import "errors"

var ErrUnsupportedRecord = errors.New("unsupported employee record")
