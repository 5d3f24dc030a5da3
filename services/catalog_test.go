package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PricingCatalog)
	}{
		{"negative unit price", func(c *PricingCatalog) {
			c.Compute.PerCPUCore = dec("-1")
		}},
		{"negative feature price", func(c *PricingCatalog) {
			c.Storage.Features[0].Price = dec("-5")
		}},
		{"tier discount of 100%", func(c *PricingCatalog) {
			c.TierDiscounts[TierEnterprise] = dec("1")
		}},
		{"negative annual discount", func(c *PricingCatalog) {
			c.AnnualDiscount = dec("-0.1")
		}},
		{"negative region multiplier", func(c *PricingCatalog) {
			c.RegionMultipliers[RegionUS] = dec("-1.1")
		}},
		{"setup fee percent at 1", func(c *PricingCatalog) {
			c.Managed.SetupFeePercent = dec("1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := DefaultCatalog()
			tt.mutate(&cat)
			if err := cat.Validate(); err == nil {
				t.Error("Validate accepted an invalid catalog")
			}
		})
	}
}

func TestMustAccessorsPanicOnUnknownValues(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		name string
		call func()
	}{
		{"region", func() { cat.mustRegionMultiplier("mars") }},
		{"tier", func() { cat.mustTierDiscount("platinum") }},
		{"backup frequency", func() { cat.Storage.mustBackupFee("weekly") }},
		{"security level", func() { cat.Security.mustLevelFee("paranoid") }},
		{"security support", func() { cat.Security.mustSupportFee(SupportPremium) }},
		{"managed size", func() { cat.Managed.mustBaseFee(SizeEnterprise) }},
		{"managed support", func() { cat.Managed.mustSupportFee(SupportPriority) }},
		{"web size", func() { cat.WebDev.mustBaseFee("mega") }},
		{"timeline", func() { cat.WebDev.mustTimelineMultiplier("someday") }},
		{"maintenance", func() { cat.WebDev.mustMaintenanceFee("platinum") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s lookup did not panic", tt.name)
				}
			}()
			tt.call()
		})
	}
}

func TestCatalogSpotPrices(t *testing.T) {
	cat := DefaultCatalog()

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"cpu core", cat.Compute.PerCPUCore, "25"},
		{"ram gb", cat.Compute.PerRAMGB, "10"},
		{"storage gb", cat.Storage.PerGB, "0.25"},
		{"security per user", cat.Security.PerUser, "45"},
		{"managed medium base", cat.Managed.BaseFees[SizeMedium], "3000"},
		{"web medium base", cat.WebDev.BaseFees[SizeMedium], "15000"},
		{"vat", cat.TaxRate, "0.05"},
		{"annual discount", cat.AnnualDiscount, "0.15"},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}

	if cat.Currency != "AED" {
		t.Errorf("Currency = %q, want AED", cat.Currency)
	}
}

func TestFeatureByID(t *testing.T) {
	cat := DefaultCatalog()

	f, ok := featureByID(cat.Compute.Features, "monitoring")
	if !ok {
		t.Fatal("monitoring not found in compute features")
	}
	if f.Label == "" || !f.Price.Equal(dec("150")) {
		t.Errorf("unexpected feature entry: %+v", f)
	}

	if _, ok := featureByID(cat.Compute.Features, "encryption"); ok {
		t.Error("encryption is a storage feature, must not resolve for compute")
	}
}
