package services

import (
	"testing"
	"time"
)

func testQuote(cfg ServiceConfiguration) Quote {
	cat := DefaultCatalog()
	issued := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return Quote{
		Reference:   QuoteReference(cfg.ServiceType(), issued),
		IssueDate:   issued,
		ValidUntil:  issued.AddDate(0, 0, 7),
		ServiceType: cfg.ServiceType(),
		Config:      cfg,
		Breakdown:   Derive(cfg, cat),
		Issuer:      testIssuer(),
	}
}

func TestRenderQuotePDF_Compute(t *testing.T) {
	result, err := RenderQuotePDF(testQuote(DefaultComputeConfig()))
	if err != nil {
		t.Fatalf("RenderQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderQuotePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestRenderQuotePDF_AllFamilies(t *testing.T) {
	configs := []ServiceConfiguration{
		DefaultComputeConfig(),
		DefaultStorageConfig(),
		DefaultSecurityConfig(),
		DefaultManagedConfig(),
		DefaultWebDevConfig(),
	}

	for _, cfg := range configs {
		t.Run(string(cfg.ServiceType()), func(t *testing.T) {
			result, err := RenderQuotePDF(testQuote(cfg))
			if err != nil {
				t.Fatalf("RenderQuotePDF() error = %v", err)
			}
			if len(result) == 0 {
				t.Fatal("RenderQuotePDF() returned empty bytes")
			}
		})
	}
}

func TestRenderQuotePDF_AnnualCommitment(t *testing.T) {
	cfg := DefaultComputeConfig()
	cfg.Commitment = CommitAnnual
	cfg.Features = []Feature{"monitoring", "backups", "ddos-protection"}

	result, err := RenderQuotePDF(testQuote(cfg))
	if err != nil {
		t.Fatalf("RenderQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderQuotePDF() returned empty bytes")
	}
}
