package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one row of the itemized breakdown. Discounts appear as
// negative amounts. Amounts are exact decimals; rounding happens only when
// a value is formatted for display.
type LineItem struct {
	Label  string
	Amount decimal.Decimal
}

// AnnualBreakdown carries the figures that only exist under an annual
// commitment.
type AnnualBreakdown struct {
	// DiscountedMonthlySubtotal is the monthly charge after both the tier
	// and the annual-commitment discounts.
	DiscountedMonthlySubtotal decimal.Decimal
	// AnnualTotal is DiscountedMonthlySubtotal × 12, before tax.
	AnnualTotal decimal.Decimal
	// AnnualTotalWithTax is the tax-inclusive monthly total × 12.
	AnnualTotalWithTax decimal.Decimal
	// AnnualSavings is MonthlySubtotal × 12 − AnnualTotal.
	AnnualSavings decimal.Decimal
}

// PriceBreakdown is the derived, itemized price for one configuration.
// It is a pure function result: recomputed wholesale on every change and
// never mutated in place.
//
// TaxAmount and MonthlyTotal always describe the user-facing monthly
// charge, i.e. they are computed on DiscountedSubtotal for a monthly
// commitment and on Annual.DiscountedMonthlySubtotal for an annual one.
// Annual is nil under a monthly commitment.
type PriceBreakdown struct {
	ServiceType ServiceType
	Commitment  Commitment

	// Tier and Size echo the configuration choices that shaped this
	// breakdown so downstream surfaces (the contact-sales handoff) can
	// carry them without re-parsing the form. A family without the
	// concept leaves the field empty.
	Tier Tier
	Size ProjectSize

	Lines              []LineItem
	MonthlySubtotal    decimal.Decimal
	DiscountedSubtotal decimal.Decimal
	TaxAmount          decimal.Decimal
	MonthlyTotal       decimal.Decimal

	// SetupFee is the one-time charge: a flat catalog value for compute,
	// storage and security, a fraction of the monthly subtotal for managed
	// services, and zero for web development (the subtotal itself is the
	// one-time project price there).
	SetupFee decimal.Decimal

	// MonthlyMaintenance is only set for web development: the recurring
	// care-plan charge alongside the one-time project price.
	MonthlyMaintenance decimal.Decimal

	Annual *AnnualBreakdown
}

// Derive computes the breakdown for any configuration variant.
func Derive(cfg ServiceConfiguration, cat PricingCatalog) PriceBreakdown {
	switch c := cfg.(type) {
	case ComputeConfig:
		return DeriveCompute(c, cat)
	case StorageConfig:
		return DeriveStorage(c, cat)
	case SecurityConfig:
		return DeriveSecurity(c, cat)
	case ManagedConfig:
		return DeriveManaged(c, cat)
	case WebDevConfig:
		return DeriveWebDev(c, cat)
	}
	panic(fmt.Sprintf("pricing: unknown configuration type %T", cfg))
}

// featureLines emits one line per enabled add-on, in catalog order.
func featureLines(offered []FeaturePrice, selected []Feature) []LineItem {
	var lines []LineItem
	for _, f := range offered {
		for _, id := range selected {
			if f.ID == id {
				lines = append(lines, LineItem{Label: f.Label, Amount: f.Price})
				break
			}
		}
	}
	return lines
}

func sumLines(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

// assemble performs the family-independent tail of the derivation: the
// single combined multiplier scaling, the tier discount line, the annual
// commitment figures and the tax on the user-facing monthly charge.
//
// The tier and annual discounts stack multiplicatively: the annual
// fraction applies to the tier-discounted subtotal. This policy is uniform
// across all families.
func assemble(st ServiceType, commitment Commitment, lines []LineItem, multiplier, tierDiscount decimal.Decimal, cat PricingCatalog) PriceBreakdown {
	one := decimal.NewFromInt(1)
	twelve := decimal.NewFromInt(12)

	// The multiplier scales the combined sum, not the individual lines,
	// so each line still shows its catalog amount.
	subtotal := sumLines(lines).Mul(multiplier)

	discounted := subtotal
	if tierDiscount.IsPositive() {
		discount := subtotal.Mul(tierDiscount)
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Tier discount (%s%%)", tierDiscount.Mul(decimal.NewFromInt(100))),
			Amount: discount.Neg(),
		})
		discounted = subtotal.Sub(discount)
	}

	b := PriceBreakdown{
		ServiceType:        st,
		Commitment:         commitment,
		Lines:              lines,
		MonthlySubtotal:    subtotal,
		DiscountedSubtotal: discounted,
	}

	taxable := discounted
	if commitment == CommitAnnual {
		taxable = discounted.Mul(one.Sub(cat.AnnualDiscount))
	}
	b.TaxAmount = taxable.Mul(cat.TaxRate)
	b.MonthlyTotal = taxable.Add(b.TaxAmount)

	if commitment == CommitAnnual {
		annualTotal := taxable.Mul(twelve)
		b.Annual = &AnnualBreakdown{
			DiscountedMonthlySubtotal: taxable,
			AnnualTotal:               annualTotal,
			AnnualTotalWithTax:        b.MonthlyTotal.Mul(twelve),
			AnnualSavings:             subtotal.Mul(twelve).Sub(annualTotal),
		}
	}

	return b
}

// DeriveCompute prices a compute configuration: pure per-unit charges plus
// add-ons, no base fee, flat setup fee.
func DeriveCompute(cfg ComputeConfig, cat PricingCatalog) PriceBreakdown {
	p := cat.Compute

	var lines []LineItem
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("vCPU cores (%d)", cfg.CPUCores),
		Amount: p.PerCPUCore.Mul(decimal.NewFromInt(int64(cfg.CPUCores))),
	})
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("Memory (%d GB)", cfg.RAMGB),
		Amount: p.PerRAMGB.Mul(decimal.NewFromInt(int64(cfg.RAMGB))),
	})
	if cfg.StorageGB > 0 {
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Block storage (%d GB)", cfg.StorageGB),
			Amount: p.PerStorageGB.Mul(decimal.NewFromInt(int64(cfg.StorageGB))),
		})
	}
	lines = append(lines, featureLines(p.Features, cfg.Features)...)

	b := assemble(ServiceCompute, cfg.Commitment, lines,
		cat.mustRegionMultiplier(cfg.Region), cat.mustTierDiscount(cfg.Tier), cat)
	b.Tier = cfg.Tier
	b.SetupFee = p.SetupFee
	return b
}

// DeriveStorage prices a storage configuration.
func DeriveStorage(cfg StorageConfig, cat PricingCatalog) PriceBreakdown {
	p := cat.Storage

	var lines []LineItem
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("Object storage (%d GB)", cfg.StorageGB),
		Amount: p.PerGB.Mul(decimal.NewFromInt(int64(cfg.StorageGB))),
	})
	if fee := p.mustBackupFee(cfg.Backup); fee.IsPositive() {
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Backups (%s)", cfg.Backup),
			Amount: fee,
		})
	}
	lines = append(lines, featureLines(p.Features, cfg.Features)...)

	b := assemble(ServiceStorage, cfg.Commitment, lines,
		cat.mustRegionMultiplier(cfg.Region), cat.mustTierDiscount(cfg.Tier), cat)
	b.Tier = cfg.Tier
	b.SetupFee = p.SetupFee
	return b
}

// DeriveSecurity prices a security configuration. The standard security
// level and basic support plan are free and emit no line item.
func DeriveSecurity(cfg SecurityConfig, cat PricingCatalog) PriceBreakdown {
	p := cat.Security

	var lines []LineItem
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("Protected users (%d)", cfg.Users),
		Amount: p.PerUser.Mul(decimal.NewFromInt(int64(cfg.Users))),
	})
	if fee := p.mustLevelFee(cfg.Level); fee.IsPositive() {
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Security level (%s)", cfg.Level),
			Amount: fee,
		})
	}
	if fee := p.mustSupportFee(cfg.Support); fee.IsPositive() {
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Support plan (%s)", cfg.Support),
			Amount: fee,
		})
	}
	lines = append(lines, featureLines(p.Features, cfg.Features)...)

	b := assemble(ServiceSecurity, cfg.Commitment, lines,
		cat.mustRegionMultiplier(cfg.Region), cat.mustTierDiscount(cfg.Tier), cat)
	b.Tier = cfg.Tier
	b.SetupFee = p.SetupFee
	return b
}

// DeriveManaged prices a managed services configuration. No tier discount
// applies to this family; the setup fee is a fraction of the monthly
// subtotal.
func DeriveManaged(cfg ManagedConfig, cat PricingCatalog) PriceBreakdown {
	p := cat.Managed

	var lines []LineItem
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("Base management (%s environment)", cfg.Size),
		Amount: p.mustBaseFee(cfg.Size),
	})
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("Managed servers (%d)", cfg.Servers),
		Amount: p.PerServer.Mul(decimal.NewFromInt(int64(cfg.Servers))),
	})
	if cfg.Databases > 0 {
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Managed databases (%d)", cfg.Databases),
			Amount: p.PerDatabase.Mul(decimal.NewFromInt(int64(cfg.Databases))),
		})
	}
	lines = append(lines, featureLines(p.Features, cfg.Features)...)
	if fee := p.mustSupportFee(cfg.Support); fee.IsPositive() {
		lines = append(lines, LineItem{
			Label:  fmt.Sprintf("Support plan (%s)", cfg.Support),
			Amount: fee,
		})
	}

	b := assemble(ServiceManaged, cfg.Commitment, lines,
		cat.mustRegionMultiplier(cfg.Region), decimal.Zero, cat)
	b.Size = cfg.Size
	b.SetupFee = b.MonthlySubtotal.Mul(p.SetupFeePercent)
	return b
}

// DeriveWebDev prices a website build. The subtotal is the one-time
// project price; the timeline urgency multiplier plays the combined-scaling
// role that the region multiplier plays for the other families. The
// maintenance plan is reported separately as the only recurring charge.
func DeriveWebDev(cfg WebDevConfig, cat PricingCatalog) PriceBreakdown {
	p := cat.WebDev

	var lines []LineItem
	lines = append(lines, LineItem{
		Label:  fmt.Sprintf("Website build (%s)", cfg.Size),
		Amount: p.mustBaseFee(cfg.Size),
	})
	lines = append(lines, featureLines(p.Features, cfg.Features)...)

	b := assemble(ServiceWebDev, CommitMonthly, lines,
		p.mustTimelineMultiplier(cfg.Timeline), cat.mustTierDiscount(cfg.Tier), cat)
	b.Tier = cfg.Tier
	b.Size = cfg.Size
	b.MonthlyMaintenance = p.mustMaintenanceFee(cfg.Maintenance)
	return b
}
