package payroll

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"empman/internal/domain/employee"
	cryptoutil "empman/internal/platform/crypto"
)

func TestGeneratePayslip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "payslips")
	svc := NewPayslipService(dir, nil)

	path, err := svc.Generate(employee.NewSalaried("Ada", "E1", dec("52000"), dec("50"), dec("20")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "E1.pdf") {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}
}

func TestGeneratePayslipEncrypted(t *testing.T) {
	crypto, err := cryptoutil.New("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dir := t.TempDir()
	svc := NewPayslipService(dir, crypto)

	path, err := svc.Generate(employee.NewHourly("Lin", "H1", dec("20"), dec("40"), dec("10")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".pdf.enc") {
		t.Fatalf("expected sealed file, got %s", path)
	}
	sealed, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plain, err := crypto.Decrypt(sealed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(plain, []byte("%PDF")) {
		t.Fatal("expected decrypted PDF document")
	}
}

func TestGeneratePayslipIDCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	svc := NewPayslipService(dir, nil)

	path, err := svc.Generate(employee.NewHourly("Lin", "../evil", dec("1"), dec("1"), dec("0")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("expected payslip inside %s, got %s", dir, path)
	}
}

func TestGeneratePayslipDistinctIDsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	svc := NewPayslipService(dir, nil)

	first, err := svc.Generate(employee.NewHourly("Lin", "a/x", dec("1"), dec("1"), dec("0")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Generate(employee.NewHourly("Kai", "b/x", dec("1"), dec("1"), dec("0")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct payslip files, both wrote %s", first)
	}
	for _, path := range []string{first, second} {
		if filepath.Dir(path) != dir {
			t.Fatalf("expected payslip inside %s, got %s", dir, path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}
}
