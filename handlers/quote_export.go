package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cloudedge/services"
)

// HandleQuoteDownload returns a handler that prices the submitted
// configuration and streams a quotation document. The generator prefers PDF
// and silently falls back to HTML, so a failed download here means both
// renderers broke.
func HandleQuoteDownload(app *pocketbase.PocketBase, cat services.PricingCatalog, gen *services.QuoteGenerator) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		family := services.ServiceType(e.Request.PathValue("family"))
		if _, ok := defaultConfig(family); !ok {
			return e.String(http.StatusNotFound, "Unknown calculator")
		}
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("quote: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		cfg, err := configFromForm(family, e.Request.PostForm, cat)
		if err != nil {
			log.Printf("quote: invalid %s configuration: %v", family, err)
			return e.String(http.StatusBadRequest, "Invalid configuration")
		}

		breakdown := services.Derive(cfg, cat)
		quote, err := gen.Generate(cfg, breakdown)
		if err != nil {
			log.Printf("quote: could not generate document for %s: %v", family, err)
			return e.String(http.StatusInternalServerError,
				"We could not prepare your quote right now. Please try again or contact sales.")
		}

		contentType := "application/pdf"
		if quote.Format == services.QuoteFormatHTML {
			contentType = "text/html; charset=utf-8"
		}
		e.Response.Header().Set("Content-Type", contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, quote.Filename))
		e.Response.Write(quote.Content)
		return nil
	}
}
