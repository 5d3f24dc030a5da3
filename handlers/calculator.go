package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cloudedge/services"
	"cloudedge/templates"
)

// HandleCalculatorPage returns a handler that renders a calculator with its
// default configuration and the matching price breakdown.
func HandleCalculatorPage(app *pocketbase.PocketBase, cat services.PricingCatalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		family := services.ServiceType(e.Request.PathValue("family"))
		cfg, ok := defaultConfig(family)
		if !ok {
			return e.String(http.StatusNotFound, "Unknown calculator")
		}
		component := templates.CalculatorPage(calculatorData(cfg, cat))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCalculatorPrice returns a handler that re-prices a submitted
// configuration and responds with just the breakdown fragment for htmx swaps.
func HandleCalculatorPrice(app *pocketbase.PocketBase, cat services.PricingCatalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		family := services.ServiceType(e.Request.PathValue("family"))
		if _, ok := defaultConfig(family); !ok {
			return e.String(http.StatusNotFound, "Unknown calculator")
		}
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("calculator: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		cfg, err := configFromForm(family, e.Request.PostForm, cat)
		if err != nil {
			log.Printf("calculator: invalid %s configuration: %v", family, err)
			return e.String(http.StatusBadRequest, "Invalid configuration")
		}

		view := templates.NewBreakdownView(services.Derive(cfg, cat))
		return templates.BreakdownFragment(view).Render(e.Request.Context(), e.Response)
	}
}

// defaultConfig maps a URL family slug to that family's default
// configuration, reporting whether the slug is a known calculator.
func defaultConfig(family services.ServiceType) (services.ServiceConfiguration, bool) {
	switch family {
	case services.ServiceCompute:
		return services.DefaultComputeConfig(), true
	case services.ServiceStorage:
		return services.DefaultStorageConfig(), true
	case services.ServiceSecurity:
		return services.DefaultSecurityConfig(), true
	case services.ServiceManaged:
		return services.DefaultManagedConfig(), true
	case services.ServiceWebDev:
		return services.DefaultWebDevConfig(), true
	}
	return nil, false
}

// configFromForm applies the posted form to the family's default
// configuration. The form always carries the full calculator state, so every
// present field becomes part of the update.
func configFromForm(family services.ServiceType, form url.Values, cat services.PricingCatalog) (services.ServiceConfiguration, error) {
	switch family {
	case services.ServiceCompute:
		u := services.ComputeUpdate{
			CPUCores:  intField(form, "cpu_cores"),
			RAMGB:     intField(form, "ram_gb"),
			StorageGB: intField(form, "storage_gb"),
			Features:  featureList(form),
		}
		if form.Has("region") {
			r := services.Region(form.Get("region"))
			u.Region = &r
		}
		if form.Has("tier") {
			t := services.Tier(form.Get("tier"))
			u.Tier = &t
		}
		if form.Has("commitment") {
			c := services.Commitment(form.Get("commitment"))
			u.Commitment = &c
		}
		return services.DefaultComputeConfig().Apply(u, cat)

	case services.ServiceStorage:
		u := services.StorageUpdate{
			StorageGB: intField(form, "storage_gb"),
			Features:  featureList(form),
		}
		if form.Has("backup") {
			b := services.BackupFrequency(form.Get("backup"))
			u.Backup = &b
		}
		if form.Has("region") {
			r := services.Region(form.Get("region"))
			u.Region = &r
		}
		if form.Has("tier") {
			t := services.Tier(form.Get("tier"))
			u.Tier = &t
		}
		if form.Has("commitment") {
			c := services.Commitment(form.Get("commitment"))
			u.Commitment = &c
		}
		return services.DefaultStorageConfig().Apply(u, cat)

	case services.ServiceSecurity:
		u := services.SecurityUpdate{
			Users:    intField(form, "users"),
			Features: featureList(form),
		}
		if form.Has("level") {
			l := services.SecurityLevel(form.Get("level"))
			u.Level = &l
		}
		if form.Has("support") {
			s := services.SupportLevel(form.Get("support"))
			u.Support = &s
		}
		if form.Has("region") {
			r := services.Region(form.Get("region"))
			u.Region = &r
		}
		if form.Has("tier") {
			t := services.Tier(form.Get("tier"))
			u.Tier = &t
		}
		if form.Has("commitment") {
			c := services.Commitment(form.Get("commitment"))
			u.Commitment = &c
		}
		return services.DefaultSecurityConfig().Apply(u, cat)

	case services.ServiceManaged:
		u := services.ManagedUpdate{
			Servers:   intField(form, "servers"),
			Databases: intField(form, "databases"),
			Features:  featureList(form),
		}
		if form.Has("size") {
			s := services.ProjectSize(form.Get("size"))
			u.Size = &s
		}
		if form.Has("support") {
			s := services.SupportLevel(form.Get("support"))
			u.Support = &s
		}
		if form.Has("region") {
			r := services.Region(form.Get("region"))
			u.Region = &r
		}
		if form.Has("commitment") {
			c := services.Commitment(form.Get("commitment"))
			u.Commitment = &c
		}
		return services.DefaultManagedConfig().Apply(u, cat)

	case services.ServiceWebDev:
		u := services.WebDevUpdate{
			Features: featureList(form),
		}
		if form.Has("size") {
			s := services.ProjectSize(form.Get("size"))
			u.Size = &s
		}
		if form.Has("timeline") {
			tl := services.Timeline(form.Get("timeline"))
			u.Timeline = &tl
		}
		if form.Has("maintenance") {
			m := services.MaintenancePlan(form.Get("maintenance"))
			u.Maintenance = &m
		}
		if form.Has("tier") {
			t := services.Tier(form.Get("tier"))
			u.Tier = &t
		}
		return services.DefaultWebDevConfig().Apply(u, cat)
	}

	panic("configFromForm: unknown family " + string(family))
}

// intField parses an optional numeric form field. Absent or non-numeric
// values leave the configuration untouched.
func intField(form url.Values, key string) *int {
	if !form.Has(key) {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(key)))
	if err != nil {
		return nil
	}
	return &n
}

// featureList always returns a list: a form with no checked boxes posts no
// features key, which means no add-ons rather than "leave unchanged".
func featureList(form url.Values) *[]services.Feature {
	feats := make([]services.Feature, 0, len(form["features"]))
	for _, f := range form["features"] {
		feats = append(feats, services.Feature(f))
	}
	return &feats
}
