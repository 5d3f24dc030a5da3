package handlers

import (
	"cloudedge/services"
	"cloudedge/templates"
)

// calculatorData builds the page view model for a configuration, including
// the priced breakdown for its current state.
func calculatorData(cfg services.ServiceConfiguration, cat services.PricingCatalog) templates.CalculatorData {
	switch c := cfg.(type) {
	case services.ComputeConfig:
		return computeCalculatorData(c, cat)
	case services.StorageConfig:
		return storageCalculatorData(c, cat)
	case services.SecurityConfig:
		return securityCalculatorData(c, cat)
	case services.ManagedConfig:
		return managedCalculatorData(c, cat)
	case services.WebDevConfig:
		return webDevCalculatorData(c, cat)
	}
	panic("calculatorData: unknown configuration type")
}

func computeCalculatorData(c services.ComputeConfig, cat services.PricingCatalog) templates.CalculatorData {
	return templates.CalculatorData{
		Slug:  string(services.ServiceCompute),
		Title: "Cloud Compute Calculator",
		Intro: "Size a virtual machine and watch the monthly price update as you go.",
		Numbers: []templates.NumberField{
			{Name: "cpu_cores", Label: "CPU cores", Value: c.CPUCores, Min: services.MinCPUCores, Max: services.MaxCPUCores, Unit: "cores"},
			{Name: "ram_gb", Label: "Memory", Value: c.RAMGB, Min: services.MinRAMGB, Max: services.MaxRAMGB, Unit: "GB"},
			{Name: "storage_gb", Label: "Block storage", Value: c.StorageGB, Min: services.MinComputeStorage, Max: services.MaxComputeStorage, Unit: "GB"},
		},
		Selects: []templates.SelectField{
			regionSelect(c.Region),
			tierSelect(c.Tier),
			commitmentSelect(c.Commitment),
		},
		Features:  featureToggles(cat.Compute.Features, c.Features),
		Breakdown: templates.NewBreakdownView(services.Derive(c, cat)),
	}
}

func storageCalculatorData(c services.StorageConfig, cat services.PricingCatalog) templates.CalculatorData {
	return templates.CalculatorData{
		Slug:  string(services.ServiceStorage),
		Title: "Cloud Storage Calculator",
		Intro: "Choose a capacity and backup schedule for durable cloud storage.",
		Numbers: []templates.NumberField{
			{Name: "storage_gb", Label: "Capacity", Value: c.StorageGB, Min: services.MinStorageGB, Max: services.MaxStorageGB, Unit: "GB"},
		},
		Selects: []templates.SelectField{
			{Name: "backup", Label: "Backup schedule", Options: []templates.Option{
				{Value: "none", Label: "No backups", Selected: c.Backup == services.BackupNone},
				{Value: "daily", Label: "Daily backups", Selected: c.Backup == services.BackupDaily},
				{Value: "hourly", Label: "Hourly backups", Selected: c.Backup == services.BackupHourly},
			}},
			regionSelect(c.Region),
			tierSelect(c.Tier),
			commitmentSelect(c.Commitment),
		},
		Features:  featureToggles(cat.Storage.Features, c.Features),
		Breakdown: templates.NewBreakdownView(services.Derive(c, cat)),
	}
}

func securityCalculatorData(c services.SecurityConfig, cat services.PricingCatalog) templates.CalculatorData {
	return templates.CalculatorData{
		Slug:  string(services.ServiceSecurity),
		Title: "Cybersecurity Calculator",
		Intro: "Protect your team with endpoint security, monitoring and response.",
		Numbers: []templates.NumberField{
			{Name: "users", Label: "Protected users", Value: c.Users, Min: services.MinUsers, Max: services.MaxUsers, Unit: "users"},
		},
		Selects: []templates.SelectField{
			{Name: "level", Label: "Security level", Options: []templates.Option{
				{Value: "standard", Label: "Standard (included)", Selected: c.Level == services.SecurityStandard},
				{Value: "advanced", Label: "Advanced", Selected: c.Level == services.SecurityAdvanced},
				{Value: "enterprise", Label: "Enterprise", Selected: c.Level == services.SecurityEnterprise},
			}},
			{Name: "support", Label: "Support plan", Options: []templates.Option{
				{Value: "basic", Label: "Basic (included)", Selected: c.Support == services.SupportBasic},
				{Value: "priority", Label: "Priority", Selected: c.Support == services.SupportPriority},
				{Value: "dedicated", Label: "Dedicated", Selected: c.Support == services.SupportDedicated},
			}},
			regionSelect(c.Region),
			tierSelect(c.Tier),
			commitmentSelect(c.Commitment),
		},
		Features:  featureToggles(cat.Security.Features, c.Features),
		Breakdown: templates.NewBreakdownView(services.Derive(c, cat)),
	}
}

func managedCalculatorData(c services.ManagedConfig, cat services.PricingCatalog) templates.CalculatorData {
	return templates.CalculatorData{
		Slug:  string(services.ServiceManaged),
		Title: "Managed IT Services Calculator",
		Intro: "Let our engineers run your infrastructure. Pick an environment size and coverage.",
		Numbers: []templates.NumberField{
			{Name: "servers", Label: "Managed servers", Value: c.Servers, Min: services.MinServers, Max: services.MaxServers, Unit: "servers"},
			{Name: "databases", Label: "Managed databases", Value: c.Databases, Min: services.MinDatabases, Max: services.MaxDatabases, Unit: "databases"},
		},
		Selects: []templates.SelectField{
			{Name: "size", Label: "Environment size", Options: []templates.Option{
				{Value: "small", Label: "Small", Selected: c.Size == services.SizeSmall},
				{Value: "medium", Label: "Medium", Selected: c.Size == services.SizeMedium},
				{Value: "large", Label: "Large", Selected: c.Size == services.SizeLarge},
			}},
			{Name: "support", Label: "Support plan", Options: []templates.Option{
				{Value: "basic", Label: "Basic (included)", Selected: c.Support == services.SupportBasic},
				{Value: "enhanced", Label: "Enhanced", Selected: c.Support == services.SupportEnhanced},
				{Value: "premium", Label: "Premium", Selected: c.Support == services.SupportPremium},
			}},
			regionSelect(c.Region),
			commitmentSelect(c.Commitment),
		},
		Features:  featureToggles(cat.Managed.Features, c.Features),
		Breakdown: templates.NewBreakdownView(services.Derive(c, cat)),
	}
}

func webDevCalculatorData(c services.WebDevConfig, cat services.PricingCatalog) templates.CalculatorData {
	return templates.CalculatorData{
		Slug:  string(services.ServiceWebDev),
		Title: "Web Development Calculator",
		Intro: "Scope a website or web application and get a fixed project price.",
		Selects: []templates.SelectField{
			{Name: "size", Label: "Project size", Options: []templates.Option{
				{Value: "small", Label: "Small — landing site", Selected: c.Size == services.SizeSmall},
				{Value: "medium", Label: "Medium — corporate site", Selected: c.Size == services.SizeMedium},
				{Value: "large", Label: "Large — web application", Selected: c.Size == services.SizeLarge},
				{Value: "enterprise", Label: "Enterprise — custom platform", Selected: c.Size == services.SizeEnterprise},
			}},
			{Name: "timeline", Label: "Timeline", Options: []templates.Option{
				{Value: "standard", Label: "Standard", Selected: c.Timeline == services.TimelineStandard},
				{Value: "expedited", Label: "Expedited (+25%)", Selected: c.Timeline == services.TimelineExpedited},
				{Value: "rush", Label: "Rush (+50%)", Selected: c.Timeline == services.TimelineRush},
			}},
			{Name: "maintenance", Label: "Maintenance plan", Options: []templates.Option{
				{Value: "none", Label: "None", Selected: c.Maintenance == services.MaintenanceNone},
				{Value: "standard", Label: "Standard", Selected: c.Maintenance == services.MaintenanceStandard},
				{Value: "premium", Label: "Premium", Selected: c.Maintenance == services.MaintenancePremium},
			}},
			tierSelect(c.Tier),
		},
		Features:  featureToggles(cat.WebDev.Features, c.Features),
		Breakdown: templates.NewBreakdownView(services.Derive(c, cat)),
	}
}

func regionSelect(sel services.Region) templates.SelectField {
	return templates.SelectField{Name: "region", Label: "Region", Options: []templates.Option{
		{Value: "uae", Label: "UAE", Selected: sel == services.RegionUAE},
		{Value: "us", Label: "United States (+10%)", Selected: sel == services.RegionUS},
		{Value: "europe", Label: "Europe (+15%)", Selected: sel == services.RegionEurope},
		{Value: "asia", Label: "Asia Pacific (+5%)", Selected: sel == services.RegionAsia},
	}}
}

func tierSelect(sel services.Tier) templates.SelectField {
	return templates.SelectField{Name: "tier", Label: "Customer tier", Options: []templates.Option{
		{Value: "startup", Label: "Startup", Selected: sel == services.TierStartup},
		{Value: "business", Label: "Business (10% off)", Selected: sel == services.TierBusiness},
		{Value: "enterprise", Label: "Enterprise (15% off)", Selected: sel == services.TierEnterprise},
	}}
}

func commitmentSelect(sel services.Commitment) templates.SelectField {
	return templates.SelectField{Name: "commitment", Label: "Billing", Options: []templates.Option{
		{Value: "monthly", Label: "Monthly", Selected: sel == services.CommitMonthly},
		{Value: "annual", Label: "Annual (15% off)", Selected: sel == services.CommitAnnual},
	}}
}

func featureToggles(offered []services.FeaturePrice, selected []services.Feature) []templates.FeatureToggle {
	out := make([]templates.FeatureToggle, 0, len(offered))
	for _, f := range offered {
		out = append(out, templates.FeatureToggle{
			ID:      string(f.ID),
			Label:   f.Label,
			Price:   services.FormatAED(f.Price),
			Checked: hasFeature(selected, f.ID),
		})
	}
	return out
}

func hasFeature(selected []services.Feature, id services.Feature) bool {
	for _, f := range selected {
		if f == id {
			return true
		}
	}
	return false
}
