package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cloudedge/testhelpers"
)

func TestHandleNewsletterSignup_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleNewsletterSignup(app)

	form := url.Values{"email": {"  Reader@Example.AE "}}
	req := postForm("/newsletter", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected 302 redirect, got %d", rec.Code)
	}

	// Email is stored trimmed and lowercased.
	records, err := app.FindRecordsByFilter("newsletter_signups",
		"email = 'reader@example.ae'", "", 1, 0)
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one signup, got %d (err %v)", len(records), err)
	}
}

func TestHandleNewsletterSignup_DuplicateIsIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleNewsletterSignup(app)

	for i := 0; i < 2; i++ {
		req := postForm("/newsletter", url.Values{"email": {"repeat@example.ae"}})
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error on attempt %d: %v", i+1, err)
		}
		if rec.Code != http.StatusFound {
			t.Errorf("attempt %d: expected 302, got %d", i+1, rec.Code)
		}
	}

	records, err := app.FindRecordsByFilter("newsletter_signups",
		"email = 'repeat@example.ae'", "", 0, 0)
	if err != nil {
		t.Fatalf("failed to query signups: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected a single stored signup, got %d", len(records))
	}
}

func TestHandleNewsletterSignup_LookupFailure(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleNewsletterSignup(app)

	// With the collection gone the dedupe query fails, which must surface
	// as an error rather than fall through to an insert.
	col, err := app.FindCollectionByNameOrId("newsletter_signups")
	if err != nil {
		t.Fatalf("failed to find collection: %v", err)
	}
	if err := app.Delete(col); err != nil {
		t.Fatalf("failed to delete collection: %v", err)
	}

	req := postForm("/newsletter", url.Values{"email": {"reader@example.ae"}})
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestHandleNewsletterSignup_RejectsInvalidEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleNewsletterSignup(app)

	for _, email := range []string{"", "nope", "two@at@signs"} {
		req := postForm("/newsletter", url.Values{"email": {email}})
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error for %q: %v", email, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("email %q: expected 400, got %d", email, rec.Code)
		}
	}
}
