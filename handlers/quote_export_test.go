package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cloudedge/services"
	"cloudedge/testhelpers"
)

func testGenerator() *services.QuoteGenerator {
	return services.NewQuoteGenerator(services.Issuer{
		Name:         "CloudEdge Technologies",
		Email:        "sales@cloudedge.ae",
		Phone:        "+971 4 555 0100",
		Website:      "www.cloudedge.ae",
		Address:      "Dubai, UAE",
		ValidityDays: 7,
	})
}

func TestHandleQuoteDownload_PDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteDownload(app, services.DefaultCatalog(), testGenerator())

	form := url.Values{
		"cpu_cores":  {"4"},
		"ram_gb":     {"8"},
		"storage_gb": {"0"},
		"region":     {"uae"},
		"tier":       {"business"},
		"commitment": {"monthly"},
	}
	req := postForm("/calculators/compute/quote", form)
	req.SetPathValue("family", "compute")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "cloudedge-compute-quote-") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if body := rec.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("body is not a PDF document")
	}
}

func TestHandleQuoteDownload_UnknownFamily(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteDownload(app, services.DefaultCatalog(), testGenerator())

	req := postForm("/calculators/catering/quote", url.Values{})
	req.SetPathValue("family", "catering")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuoteDownload_InvalidConfiguration(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteDownload(app, services.DefaultCatalog(), testGenerator())

	form := url.Values{"tier": {"platinum"}}
	req := postForm("/calculators/compute/quote", form)
	req.SetPathValue("family", "compute")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
