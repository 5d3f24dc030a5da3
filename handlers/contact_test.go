package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cloudedge/testhelpers"
)

func TestHandleContactPage_PrefillsQuoteContext(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleContactPage(app)

	req := httptest.NewRequest(http.MethodGet,
		"/contact?service=compute&reference=QCMP-123456&price=AED+170.10", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"QCMP-123456",
		"AED 170.10",
		`name="name"`,
		`name="email"`,
	)
}

func TestHandleContactSubmit_SavesLead(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleContactSubmit(app)

	form := url.Values{
		"name":            {"Amira Hassan"},
		"email":           {"amira@example.ae"},
		"phone":           {"+971 50 123 4567"},
		"company":         {"Hassan Logistics"},
		"message":         {"Please call me about the managed services quote."},
		"service_type":    {"managed-services"},
		"quote_reference": {"QMSP-654321"},
		"monthly_price":   {"AED 9,555.00"},
	}
	req := postForm("/contact", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	records, err := app.FindRecordsByFilter("leads", "email = 'amira@example.ae'", "", 1, 0)
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one saved lead, got %d (err %v)", len(records), err)
	}
	lead := records[0]
	if got := lead.GetString("quote_reference"); got != "QMSP-654321" {
		t.Errorf("expected quote reference QMSP-654321, got %q", got)
	}
	if got := lead.GetString("service_type"); got != "managed-services" {
		t.Errorf("expected service_type managed-services, got %q", got)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Thank you")
}

func TestHandleContactSubmit_RejectsUnknownServiceType(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleContactSubmit(app)

	form := url.Values{
		"name":         {"Amira Hassan"},
		"email":        {"amira@example.ae"},
		"service_type": {"catering"},
	}
	req := postForm("/contact", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 re-render, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "field-error")

	records, err := app.FindRecordsByFilter("leads", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("failed to query leads: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no leads saved, got %d", len(records))
	}
}

func TestHandleContactSubmit_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleContactSubmit(app)

	form := url.Values{
		"name":  {"A"},
		"email": {"not-an-email"},
	}
	req := postForm("/contact", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Form re-renders with the submitted values and per-field errors.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`value="A"`,
		"not-an-email",
	)

	records, err := app.FindRecordsByFilter("leads", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("failed to query leads: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no leads saved, got %d", len(records))
	}
}
