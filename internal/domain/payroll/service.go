package payroll

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"empman/internal/domain/employee"
	cryptoutil "empman/internal/platform/crypto"
)

type PayslipService struct {
	dir    string
	crypto *cryptoutil.Service
	now    func() time.Time
}

func NewPayslipService(dir string, crypto *cryptoutil.Service) *PayslipService {
	return &PayslipService{dir: dir, crypto: crypto, now: time.Now}
}

// payslipName escapes path separators so every distinct ID gets its own file
// inside the payslip directory.
func payslipName(id string) string {
	return url.PathEscape(id) + ".pdf"
}

// Generate writes a one-page payslip for r and returns the file path. With
// an encryption key configured the returned path ends in ".pdf.enc".
func (s *PayslipService) Generate(r employee.Record) (string, error) {
	summary, err := Summarize(r)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.dir, payslipName(summary.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", summary.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("ID: %s", summary.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Role: %s", summary.Role))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", s.now().Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, r.PayDetails())
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross (%s): %s", summary.Period, employee.FormatAmount(summary.Gross)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net (%s): %s", summary.Period, employee.FormatAmount(summary.Net)))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	if s.crypto.Configured() {
		return s.crypto.SealFile(filePath)
	}
	return filePath, nil
}
