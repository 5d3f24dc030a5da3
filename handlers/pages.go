package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cloudedge/templates"
)

// HandleHome returns a handler that renders the landing page.
func HandleHome(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.HomePage().Render(e.Request.Context(), e.Response)
	}
}

// HandleServices returns a handler that renders the service catalogue.
func HandleServices(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.ServicesPage().Render(e.Request.Context(), e.Response)
	}
}

// HandlePricing returns a handler that renders the pricing hub.
func HandlePricing(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.PricingPage().Render(e.Request.Context(), e.Response)
	}
}
