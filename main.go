package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cloudedge/collections"
	"cloudedge/config"
	"cloudedge/handlers"
	"cloudedge/services"
)

func main() {
	app := pocketbase.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	catalog := services.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("catalog: %v", err)
	}

	quotes := services.NewQuoteGenerator(cfg.Issuer())

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Marketing pages ──────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(app))
		se.Router.GET("/services", handlers.HandleServices(app))
		se.Router.GET("/pricing", handlers.HandlePricing(app))

		// ── Pricing calculators ──────────────────────────────────
		se.Router.GET("/calculators/{family}", handlers.HandleCalculatorPage(app, catalog))
		se.Router.POST("/calculators/{family}/price", handlers.HandleCalculatorPrice(app, catalog))
		se.Router.POST("/calculators/{family}/quote", handlers.HandleQuoteDownload(app, catalog, quotes))

		// ── Lead capture ─────────────────────────────────────────
		se.Router.GET("/contact", handlers.HandleContactPage(app))
		se.Router.POST("/contact", handlers.HandleContactSubmit(app))
		se.Router.POST("/newsletter", handlers.HandleNewsletterSignup(app))

		// ── Admin exports ────────────────────────────────────────
		se.Router.GET("/admin/leads/export/excel",
			handlers.HandleLeadsExportExcel(app)).Bind(apis.RequireSuperuserAuth())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
