package services

import (
	"strings"
	"testing"
)

func TestRenderQuoteHTML_ContentContract(t *testing.T) {
	q := testQuote(DefaultComputeConfig())

	result, err := RenderQuoteHTML(q)
	if err != nil {
		t.Fatalf("RenderQuoteHTML() error = %v", err)
	}

	body := string(result)
	mustContain := []string{
		"<!DOCTYPE html>",
		"CloudEdge Technologies",
		q.Reference,
		"29 Aug 2026", // issue date
		"05 Sep 2026", // valid until
		"Cloud Compute Quotation",
		"vCPU cores (4)",
		"Tier discount (10%)",
		"VAT (5%)",
		"AED 170.10",
		"AED 500.00", // setup fee
		"sales@cloudedge.ae",
	}
	for _, frag := range mustContain {
		if !strings.Contains(body, frag) {
			t.Errorf("rendered HTML missing %q", frag)
		}
	}

	// Every quote carries the full terms boilerplate.
	for _, term := range QuoteTerms() {
		if !strings.Contains(body, term) {
			t.Errorf("rendered HTML missing term %q", term)
		}
	}
}

func TestRenderQuoteHTML_AnnualFigures(t *testing.T) {
	cfg := DefaultManagedConfig()
	cfg.Servers = 5
	cfg.Databases = 2
	cfg.Support = SupportEnhanced
	cfg.Commitment = CommitAnnual
	cfg.Features = []Feature{"monitoring", "security", "backups"}

	result, err := RenderQuoteHTML(testQuote(cfg))
	if err != nil {
		t.Fatalf("RenderQuoteHTML() error = %v", err)
	}

	body := string(result)
	for _, frag := range []string{
		"AED 7,735.00",  // discounted monthly subtotal
		"AED 92,820.00", // annual total
		"AED 16,380.00", // annual savings
		"Monthly with annual commitment",
	} {
		if !strings.Contains(body, frag) {
			t.Errorf("annual quote missing %q", frag)
		}
	}
}

func TestRenderQuoteHTML_WebDevLabels(t *testing.T) {
	result, err := RenderQuoteHTML(testQuote(DefaultWebDevConfig()))
	if err != nil {
		t.Fatalf("RenderQuoteHTML() error = %v", err)
	}

	body := string(result)
	if !strings.Contains(body, "Project subtotal") {
		t.Error("web development quote should label the subtotal as a project price")
	}
	if !strings.Contains(body, "Monthly maintenance") {
		t.Error("web development quote should show the maintenance charge")
	}
	if strings.Contains(body, "Monthly with annual commitment") {
		t.Error("web development quote must not show annual commitment rows")
	}
}

func TestRenderQuoteHTML_EscapesUserVisibleText(t *testing.T) {
	q := testQuote(DefaultComputeConfig())
	q.Issuer.Name = `Cloud<script>alert("x")</script>Edge`

	result, err := RenderQuoteHTML(q)
	if err != nil {
		t.Fatalf("RenderQuoteHTML() error = %v", err)
	}
	if strings.Contains(string(result), "<script>") {
		t.Error("issuer name was not HTML-escaped")
	}
}
