package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func TestGenerateLeadBook_Basic(t *testing.T) {
	rows := []LeadRow{
		{
			Name:         "Fatima Al Mansoori",
			Email:        "fatima@example.ae",
			Phone:        "+971 50 123 4567",
			Company:      "Al Noor Trading",
			ServiceType:  "compute",
			QuoteRef:     "QCMP-482910",
			MonthlyPrice: "AED 170.10",
			Message:      "Interested in migrating our ERP.",
			CreatedDate:  "28 Aug 2026",
		},
		{
			Name:        "Omar Haddad",
			Email:       "omar@example.com",
			ServiceType: "web-development",
			CreatedDate: "29 Aug 2026",
		},
	}

	result, err := GenerateLeadBook(rows)
	if err != nil {
		t.Fatalf("GenerateLeadBook() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateLeadBook() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Leads" {
		t.Errorf("expected sheet name 'Leads', got %v", sheets)
	}

	title, _ := f.GetCellValue("Leads", "A1")
	if title != "Sales Leads" {
		t.Errorf("expected title 'Sales Leads', got %q", title)
	}

	name, _ := f.GetCellValue("Leads", "A4")
	if name != "Fatima Al Mansoori" {
		t.Errorf("expected first lead name in A4, got %q", name)
	}
	ref, _ := f.GetCellValue("Leads", "F4")
	if ref != "QCMP-482910" {
		t.Errorf("expected quote ref in F4, got %q", ref)
	}
}

func TestGenerateLeadBook_Empty(t *testing.T) {
	result, err := GenerateLeadBook(nil)
	if err != nil {
		t.Fatalf("GenerateLeadBook() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateLeadBook() returned empty bytes")
	}
}

func TestGenerateLeadBook_SanitizesFormulas(t *testing.T) {
	rows := []LeadRow{
		{Name: "=cmd|' /C calc'!A0", Email: "attacker@example.com"},
	}

	result, err := GenerateLeadBook(rows)
	if err != nil {
		t.Fatalf("GenerateLeadBook() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	name, _ := f.GetCellValue("Leads", "A4")
	if len(name) == 0 || name[0] == '=' {
		t.Errorf("formula not neutralized, cell = %q", name)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"normal text", "normal text"},
		{"=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"+971 50 123", "'+971 50 123"},
		{"-deduct", "'-deduct"},
		{"@handle", "'@handle"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
