package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cloudedge/services"
	"cloudedge/templates"
)

// HandleContactPage returns a handler that renders the contact form. Quote
// context from a calculator (reference, service, price) is prefilled from
// query parameters so the enquiry arrives with its quote attached.
func HandleContactPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		data := templates.ContactData{
			ServiceType:    q.Get("service"),
			QuoteReference: q.Get("reference"),
			MonthlyPrice:   q.Get("price"),
			Errors:         make(map[string]string),
		}
		return templates.ContactPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleContactSubmit returns a handler that validates and persists a sales
// lead, re-rendering the form with field errors on failure.
func HandleContactSubmit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("contact: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		data := templates.ContactData{
			Name:           strings.TrimSpace(e.Request.FormValue("name")),
			Email:          strings.TrimSpace(e.Request.FormValue("email")),
			Phone:          strings.TrimSpace(e.Request.FormValue("phone")),
			Company:        strings.TrimSpace(e.Request.FormValue("company")),
			Message:        strings.TrimSpace(e.Request.FormValue("message")),
			ServiceType:    strings.TrimSpace(e.Request.FormValue("service_type")),
			QuoteReference: strings.TrimSpace(e.Request.FormValue("quote_reference")),
			MonthlyPrice:   strings.TrimSpace(e.Request.FormValue("monthly_price")),
			Errors:         make(map[string]string),
		}

		err := validation.Errors{
			"name":    validation.Validate(data.Name, validation.Required, validation.Length(2, 100)),
			"email":   validation.Validate(data.Email, validation.Required, is.EmailFormat),
			"phone":   validation.Validate(data.Phone, validation.Length(0, 30)),
			"company": validation.Validate(data.Company, validation.Length(0, 120)),
			"message": validation.Validate(data.Message, validation.Length(0, 2000)),
			// Empty is fine (a plain enquiry); a present value must be a
			// real service family or the record save would fail opaquely.
			"service_type": validation.Validate(data.ServiceType, validation.In(
				string(services.ServiceCompute),
				string(services.ServiceStorage),
				string(services.ServiceSecurity),
				string(services.ServiceManaged),
				string(services.ServiceWebDev),
			)),
		}.Filter()
		if err != nil {
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				for field, ferr := range verrs {
					data.Errors[field] = ferr.Error()
				}
			} else {
				data.Errors["name"] = err.Error()
			}
			return templates.ContactPage(data).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("contact: could not find leads collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		record.Set("name", data.Name)
		record.Set("email", data.Email)
		record.Set("phone", data.Phone)
		record.Set("company", data.Company)
		record.Set("message", data.Message)
		record.Set("service_type", data.ServiceType)
		record.Set("quote_reference", data.QuoteReference)
		record.Set("monthly_price", data.MonthlyPrice)

		if err := app.Save(record); err != nil {
			log.Printf("contact: could not save lead: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		confirmation := templates.ContactData{
			Errors:    make(map[string]string),
			Submitted: true,
		}
		return templates.ContactPage(confirmation).Render(e.Request.Context(), e.Response)
	}
}
