// Package services provides the pricing catalog, calculator configurations,
// price derivation and quote document generation for the CloudEdge site.
package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ServiceType identifies a calculator family.
type ServiceType string

const (
	ServiceCompute  ServiceType = "compute"
	ServiceStorage  ServiceType = "storage"
	ServiceSecurity ServiceType = "security"
	ServiceManaged  ServiceType = "managed-services"
	ServiceWebDev   ServiceType = "web-development"
)

// Region is a deployment region with its own price multiplier.
type Region string

const (
	RegionUAE    Region = "uae"
	RegionUS     Region = "us"
	RegionEurope Region = "europe"
	RegionAsia   Region = "asia"
)

// Tier is a customer discount bracket.
type Tier string

const (
	TierStartup    Tier = "startup"
	TierBusiness   Tier = "business"
	TierEnterprise Tier = "enterprise"
)

// Commitment is the billing cadence.
type Commitment string

const (
	CommitMonthly Commitment = "monthly"
	CommitAnnual  Commitment = "annual"
)

// ProjectSize is the discrete size bracket for project-based families.
type ProjectSize string

const (
	SizeSmall      ProjectSize = "small"
	SizeMedium     ProjectSize = "medium"
	SizeLarge      ProjectSize = "large"
	SizeEnterprise ProjectSize = "enterprise"
)

// BackupFrequency for the storage family.
type BackupFrequency string

const (
	BackupNone   BackupFrequency = "none"
	BackupDaily  BackupFrequency = "daily"
	BackupHourly BackupFrequency = "hourly"
)

// SecurityLevel for the security family.
type SecurityLevel string

const (
	SecurityStandard   SecurityLevel = "standard"
	SecurityAdvanced   SecurityLevel = "advanced"
	SecurityEnterprise SecurityLevel = "enterprise"
)

// SupportLevel names a support plan. The valid values depend on the family:
// security offers basic/priority/dedicated, managed services offers
// basic/enhanced/premium. The lowest level is always free.
type SupportLevel string

const (
	SupportBasic     SupportLevel = "basic"
	SupportPriority  SupportLevel = "priority"
	SupportDedicated SupportLevel = "dedicated"
	SupportEnhanced  SupportLevel = "enhanced"
	SupportPremium   SupportLevel = "premium"
)

// Timeline is the delivery urgency for web development projects.
type Timeline string

const (
	TimelineStandard  Timeline = "standard"
	TimelineExpedited Timeline = "expedited"
	TimelineRush      Timeline = "rush"
)

// MaintenancePlan is the recurring care plan for a delivered website.
type MaintenancePlan string

const (
	MaintenanceNone     MaintenancePlan = "none"
	MaintenanceStandard MaintenancePlan = "standard"
	MaintenancePremium  MaintenancePlan = "premium"
)

// Feature is an optional add-on toggle within a family.
type Feature string

// FeaturePrice is one catalog add-on. The slice order in the catalog is the
// display order of the resulting line items.
type FeaturePrice struct {
	ID    Feature
	Label string
	Price decimal.Decimal
}

// ComputePricing holds the unit economics of the compute family.
type ComputePricing struct {
	PerCPUCore   decimal.Decimal
	PerRAMGB     decimal.Decimal
	PerStorageGB decimal.Decimal
	Features     []FeaturePrice
	SetupFee     decimal.Decimal
}

// StoragePricing holds the unit economics of the storage family.
type StoragePricing struct {
	PerGB      decimal.Decimal
	BackupFees map[BackupFrequency]decimal.Decimal
	Features   []FeaturePrice
	SetupFee   decimal.Decimal
}

// SecurityPricing holds the unit economics of the security family.
type SecurityPricing struct {
	PerUser     decimal.Decimal
	LevelFees   map[SecurityLevel]decimal.Decimal
	SupportFees map[SupportLevel]decimal.Decimal
	Features    []FeaturePrice
	SetupFee    decimal.Decimal
}

// ManagedPricing holds the unit economics of the managed services family.
// Its setup fee is a fraction of the monthly subtotal rather than flat.
type ManagedPricing struct {
	BaseFees        map[ProjectSize]decimal.Decimal
	PerServer       decimal.Decimal
	PerDatabase     decimal.Decimal
	Features        []FeaturePrice
	SupportFees     map[SupportLevel]decimal.Decimal
	SetupFeePercent decimal.Decimal
}

// WebDevPricing holds the unit economics of the web development family.
// The derived subtotal is the one-time project price; the maintenance plan
// is the only recurring charge.
type WebDevPricing struct {
	BaseFees            map[ProjectSize]decimal.Decimal
	Features            []FeaturePrice
	TimelineMultipliers map[Timeline]decimal.Decimal
	MaintenanceFees     map[MaintenancePlan]decimal.Decimal
}

// PricingCatalog is the immutable set of unit prices, multipliers and
// discount fractions for every calculator family. It is constructed once at
// startup and injected into the derivation functions; it is never mutated.
type PricingCatalog struct {
	Compute  ComputePricing
	Storage  StoragePricing
	Security SecurityPricing
	Managed  ManagedPricing
	WebDev   WebDevPricing

	RegionMultipliers map[Region]decimal.Decimal
	TierDiscounts     map[Tier]decimal.Decimal
	AnnualDiscount    decimal.Decimal
	TaxRate           decimal.Decimal
	Currency          string
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultCatalog returns the production CloudEdge price list.
// All amounts are monthly AED unless noted otherwise.
func DefaultCatalog() PricingCatalog {
	return PricingCatalog{
		Compute: ComputePricing{
			PerCPUCore:   dec("25"),
			PerRAMGB:     dec("10"),
			PerStorageGB: dec("0.35"),
			Features: []FeaturePrice{
				{ID: "monitoring", Label: "24/7 monitoring", Price: dec("150")},
				{ID: "backups", Label: "Automated backups", Price: dec("100")},
				{ID: "ddos-protection", Label: "DDoS protection", Price: dec("200")},
			},
			SetupFee: dec("500"),
		},
		Storage: StoragePricing{
			PerGB: dec("0.25"),
			BackupFees: map[BackupFrequency]decimal.Decimal{
				BackupNone:   dec("0"),
				BackupDaily:  dec("180"),
				BackupHourly: dec("450"),
			},
			Features: []FeaturePrice{
				{ID: "encryption", Label: "Encryption at rest", Price: dec("120")},
				{ID: "replication", Label: "Cross-region replication", Price: dec("300")},
			},
			SetupFee: dec("300"),
		},
		Security: SecurityPricing{
			PerUser: dec("45"),
			LevelFees: map[SecurityLevel]decimal.Decimal{
				SecurityStandard:   dec("0"),
				SecurityAdvanced:   dec("600"),
				SecurityEnterprise: dec("1400"),
			},
			SupportFees: map[SupportLevel]decimal.Decimal{
				SupportBasic:     dec("0"),
				SupportPriority:  dec("400"),
				SupportDedicated: dec("900"),
			},
			Features: []FeaturePrice{
				{ID: "siem", Label: "SIEM integration", Price: dec("750")},
				{ID: "pen-testing", Label: "Quarterly penetration testing", Price: dec("1100")},
			},
			SetupFee: dec("750"),
		},
		Managed: ManagedPricing{
			BaseFees: map[ProjectSize]decimal.Decimal{
				SizeSmall:  dec("1500"),
				SizeMedium: dec("3000"),
				SizeLarge:  dec("6000"),
			},
			PerServer:   dec("250"),
			PerDatabase: dec("350"),
			Features: []FeaturePrice{
				{ID: "monitoring", Label: "Infrastructure monitoring", Price: dec("800")},
				{ID: "security", Label: "Security management", Price: dec("1200")},
				{ID: "backups", Label: "Backup management", Price: dec("650")},
			},
			SupportFees: map[SupportLevel]decimal.Decimal{
				SupportBasic:    dec("0"),
				SupportEnhanced: dec("1500"),
				SupportPremium:  dec("3000"),
			},
			SetupFeePercent: dec("0.10"),
		},
		WebDev: WebDevPricing{
			BaseFees: map[ProjectSize]decimal.Decimal{
				SizeSmall:      dec("8000"),
				SizeMedium:     dec("15000"),
				SizeLarge:      dec("28000"),
				SizeEnterprise: dec("50000"),
			},
			Features: []FeaturePrice{
				{ID: "cms", Label: "Content management system", Price: dec("2500")},
				{ID: "ecommerce", Label: "E-commerce storefront", Price: dec("6000")},
				{ID: "seo", Label: "SEO package", Price: dec("1800")},
				{ID: "multilingual", Label: "Multilingual support", Price: dec("3200")},
			},
			TimelineMultipliers: map[Timeline]decimal.Decimal{
				TimelineStandard:  dec("1.0"),
				TimelineExpedited: dec("1.25"),
				TimelineRush:      dec("1.5"),
			},
			MaintenanceFees: map[MaintenancePlan]decimal.Decimal{
				MaintenanceNone:     dec("0"),
				MaintenanceStandard: dec("900"),
				MaintenancePremium:  dec("2200"),
			},
		},
		RegionMultipliers: map[Region]decimal.Decimal{
			RegionUAE:    dec("1.0"),
			RegionUS:     dec("1.1"),
			RegionEurope: dec("1.15"),
			RegionAsia:   dec("1.05"),
		},
		TierDiscounts: map[Tier]decimal.Decimal{
			TierStartup:    dec("0"),
			TierBusiness:   dec("0.10"),
			TierEnterprise: dec("0.15"),
		},
		AnnualDiscount: dec("0.15"),
		TaxRate:        dec("0.05"),
		Currency:       "AED",
	}
}

// Validate checks the catalog invariants: prices and multipliers must be
// non-negative and discount fractions must be in [0,1).
func (c PricingCatalog) Validate() error {
	one := decimal.NewFromInt(1)

	checkPrice := func(name string, d decimal.Decimal) error {
		if d.IsNegative() {
			return fmt.Errorf("catalog: %s is negative (%s)", name, d)
		}
		return nil
	}
	checkFraction := func(name string, d decimal.Decimal) error {
		if d.IsNegative() || d.GreaterThanOrEqual(one) {
			return fmt.Errorf("catalog: %s must be in [0,1), got %s", name, d)
		}
		return nil
	}

	prices := map[string]decimal.Decimal{
		"compute.per_cpu_core":   c.Compute.PerCPUCore,
		"compute.per_ram_gb":     c.Compute.PerRAMGB,
		"compute.per_storage_gb": c.Compute.PerStorageGB,
		"compute.setup_fee":      c.Compute.SetupFee,
		"storage.per_gb":         c.Storage.PerGB,
		"storage.setup_fee":      c.Storage.SetupFee,
		"security.per_user":      c.Security.PerUser,
		"security.setup_fee":     c.Security.SetupFee,
		"managed.per_server":     c.Managed.PerServer,
		"managed.per_database":   c.Managed.PerDatabase,
		"tax_rate":               c.TaxRate,
	}
	for name, d := range prices {
		if err := checkPrice(name, d); err != nil {
			return err
		}
	}

	for _, features := range [][]FeaturePrice{
		c.Compute.Features, c.Storage.Features, c.Security.Features,
		c.Managed.Features, c.WebDev.Features,
	} {
		for _, f := range features {
			if err := checkPrice(fmt.Sprintf("feature %s", f.ID), f.Price); err != nil {
				return err
			}
		}
	}

	for r, m := range c.RegionMultipliers {
		if err := checkPrice(fmt.Sprintf("region multiplier %s", r), m); err != nil {
			return err
		}
	}
	for tl, m := range c.WebDev.TimelineMultipliers {
		if err := checkPrice(fmt.Sprintf("timeline multiplier %s", tl), m); err != nil {
			return err
		}
	}

	for t, d := range c.TierDiscounts {
		if err := checkFraction(fmt.Sprintf("tier discount %s", t), d); err != nil {
			return err
		}
	}
	if err := checkFraction("annual discount", c.AnnualDiscount); err != nil {
		return err
	}
	if err := checkFraction("managed setup fee percent", c.Managed.SetupFeePercent); err != nil {
		return err
	}

	return nil
}

// A catalog lookup with an enum value that has no entry is a programming
// error, never a runtime condition: silently defaulting a missing price
// would under-price a quote. The must* accessors fail fast.

func (c PricingCatalog) mustRegionMultiplier(r Region) decimal.Decimal {
	m, ok := c.RegionMultipliers[r]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown region %q", r))
	}
	return m
}

func (c PricingCatalog) mustTierDiscount(t Tier) decimal.Decimal {
	d, ok := c.TierDiscounts[t]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown tier %q", t))
	}
	return d
}

func (p StoragePricing) mustBackupFee(f BackupFrequency) decimal.Decimal {
	fee, ok := p.BackupFees[f]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown backup frequency %q", f))
	}
	return fee
}

func (p SecurityPricing) mustLevelFee(l SecurityLevel) decimal.Decimal {
	fee, ok := p.LevelFees[l]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown security level %q", l))
	}
	return fee
}

func (p SecurityPricing) mustSupportFee(l SupportLevel) decimal.Decimal {
	fee, ok := p.SupportFees[l]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown security support level %q", l))
	}
	return fee
}

func (p ManagedPricing) mustBaseFee(s ProjectSize) decimal.Decimal {
	fee, ok := p.BaseFees[s]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown managed project size %q", s))
	}
	return fee
}

func (p ManagedPricing) mustSupportFee(l SupportLevel) decimal.Decimal {
	fee, ok := p.SupportFees[l]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown managed support level %q", l))
	}
	return fee
}

func (p WebDevPricing) mustBaseFee(s ProjectSize) decimal.Decimal {
	fee, ok := p.BaseFees[s]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown web project size %q", s))
	}
	return fee
}

func (p WebDevPricing) mustTimelineMultiplier(t Timeline) decimal.Decimal {
	m, ok := p.TimelineMultipliers[t]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown timeline %q", t))
	}
	return m
}

func (p WebDevPricing) mustMaintenanceFee(m MaintenancePlan) decimal.Decimal {
	fee, ok := p.MaintenanceFees[m]
	if !ok {
		panic(fmt.Sprintf("pricing catalog: unknown maintenance plan %q", m))
	}
	return fee
}

// featureByID returns the catalog entry for a feature ID, reporting whether
// the family offers it.
func featureByID(features []FeaturePrice, id Feature) (FeaturePrice, bool) {
	for _, f := range features {
		if f.ID == id {
			return f, true
		}
	}
	return FeaturePrice{}, false
}
