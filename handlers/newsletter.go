package handlers

import (
	"log"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleNewsletterSignup returns a handler that records a newsletter email.
// Duplicate signups are treated as success so resubscribing never errors.
func HandleNewsletterSignup(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("newsletter: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		email := strings.TrimSpace(strings.ToLower(e.Request.FormValue("email")))
		if err := validation.Validate(email, validation.Required, is.EmailFormat); err != nil {
			return e.String(http.StatusBadRequest, "Please enter a valid email address")
		}

		existing, err := app.FindRecordsByFilter("newsletter_signups",
			"email = {:email}", "", 1, 0, map[string]any{"email": email})
		if err != nil {
			log.Printf("newsletter: could not check for existing signup: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		if len(existing) == 0 {
			col, err := app.FindCollectionByNameOrId("newsletter_signups")
			if err != nil {
				log.Printf("newsletter: could not find collection: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			record := core.NewRecord(col)
			record.Set("email", email)
			if err := app.Save(record); err != nil {
				log.Printf("newsletter: could not save signup: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
		}

		return e.Redirect(http.StatusFound, "/")
	}
}
