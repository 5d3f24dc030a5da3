package services

import "fmt"

// Numeric bounds for the slider-backed fields. Out-of-range values are
// clamped, mirroring the slider controls which cannot produce them.
const (
	MinCPUCores, MaxCPUCores             = 1, 32
	MinRAMGB, MaxRAMGB                   = 1, 128
	MinComputeStorage, MaxComputeStorage = 0, 2000
	MinStorageGB, MaxStorageGB           = 50, 50000
	MinUsers, MaxUsers                   = 1, 500
	MinServers, MaxServers               = 1, 100
	MinDatabases, MaxDatabases           = 0, 50
)

// SummaryLine is one human-labeled configuration row for quote rendering.
type SummaryLine struct {
	Label string
	Value string
}

// ServiceConfiguration is the tagged union over the per-family config
// structs. Each variant carries only the fields meaningful to its family.
type ServiceConfiguration interface {
	ServiceType() ServiceType
	BillingCommitment() Commitment
	SummaryLines() []SummaryLine
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func validateRegion(cat PricingCatalog, r Region) error {
	if _, ok := cat.RegionMultipliers[r]; !ok {
		return fmt.Errorf("invalid region %q", r)
	}
	return nil
}

func validateTier(cat PricingCatalog, t Tier) error {
	if _, ok := cat.TierDiscounts[t]; !ok {
		return fmt.Errorf("invalid tier %q", t)
	}
	return nil
}

func validateCommitment(c Commitment) error {
	if c != CommitMonthly && c != CommitAnnual {
		return fmt.Errorf("invalid billing commitment %q", c)
	}
	return nil
}

func validateFeatures(family ServiceType, offered []FeaturePrice, selected []Feature) error {
	for _, id := range selected {
		if _, ok := featureByID(offered, id); !ok {
			return fmt.Errorf("feature %q is not offered by the %s family", id, family)
		}
	}
	return nil
}

// ── Compute ──────────────────────────────────────────────────────────────

type ComputeConfig struct {
	CPUCores   int
	RAMGB      int
	StorageGB  int
	Region     Region
	Tier       Tier
	Commitment Commitment
	Features   []Feature
}

// ComputeUpdate is a partial update: only non-nil fields are applied.
type ComputeUpdate struct {
	CPUCores   *int
	RAMGB      *int
	StorageGB  *int
	Region     *Region
	Tier       *Tier
	Commitment *Commitment
	Features   *[]Feature
}

func DefaultComputeConfig() ComputeConfig {
	return ComputeConfig{
		CPUCores:   4,
		RAMGB:      8,
		StorageGB:  0,
		Region:     RegionUAE,
		Tier:       TierBusiness,
		Commitment: CommitMonthly,
	}
}

func (c ComputeConfig) ServiceType() ServiceType      { return ServiceCompute }
func (c ComputeConfig) BillingCommitment() Commitment { return c.Commitment }

// Apply merges a partial update into the configuration. Numeric fields are
// clamped to their declared bounds; enum and feature values outside the
// catalog's set are a contract violation and return an error.
func (c ComputeConfig) Apply(u ComputeUpdate, cat PricingCatalog) (ComputeConfig, error) {
	if u.CPUCores != nil {
		c.CPUCores = clampInt(*u.CPUCores, MinCPUCores, MaxCPUCores)
	}
	if u.RAMGB != nil {
		c.RAMGB = clampInt(*u.RAMGB, MinRAMGB, MaxRAMGB)
	}
	if u.StorageGB != nil {
		c.StorageGB = clampInt(*u.StorageGB, MinComputeStorage, MaxComputeStorage)
	}
	if u.Region != nil {
		if err := validateRegion(cat, *u.Region); err != nil {
			return c, err
		}
		c.Region = *u.Region
	}
	if u.Tier != nil {
		if err := validateTier(cat, *u.Tier); err != nil {
			return c, err
		}
		c.Tier = *u.Tier
	}
	if u.Commitment != nil {
		if err := validateCommitment(*u.Commitment); err != nil {
			return c, err
		}
		c.Commitment = *u.Commitment
	}
	if u.Features != nil {
		if err := validateFeatures(ServiceCompute, cat.Compute.Features, *u.Features); err != nil {
			return c, err
		}
		c.Features = *u.Features
	}
	return c, nil
}

func (c ComputeConfig) SummaryLines() []SummaryLine {
	return []SummaryLine{
		{"CPU cores", fmt.Sprintf("%d", c.CPUCores)},
		{"Memory", fmt.Sprintf("%d GB", c.RAMGB)},
		{"Block storage", fmt.Sprintf("%d GB", c.StorageGB)},
		{"Region", regionLabel(c.Region)},
		{"Tier", titleCase(string(c.Tier))},
		{"Billing", titleCase(string(c.Commitment))},
		{"Add-ons", featureSummary(c.Features)},
	}
}

// ── Storage ──────────────────────────────────────────────────────────────

type StorageConfig struct {
	StorageGB  int
	Backup     BackupFrequency
	Region     Region
	Tier       Tier
	Commitment Commitment
	Features   []Feature
}

type StorageUpdate struct {
	StorageGB  *int
	Backup     *BackupFrequency
	Region     *Region
	Tier       *Tier
	Commitment *Commitment
	Features   *[]Feature
}

func DefaultStorageConfig() StorageConfig {
	return StorageConfig{
		StorageGB:  500,
		Backup:     BackupDaily,
		Region:     RegionUAE,
		Tier:       TierBusiness,
		Commitment: CommitMonthly,
	}
}

func (c StorageConfig) ServiceType() ServiceType      { return ServiceStorage }
func (c StorageConfig) BillingCommitment() Commitment { return c.Commitment }

func (c StorageConfig) Apply(u StorageUpdate, cat PricingCatalog) (StorageConfig, error) {
	if u.StorageGB != nil {
		c.StorageGB = clampInt(*u.StorageGB, MinStorageGB, MaxStorageGB)
	}
	if u.Backup != nil {
		if _, ok := cat.Storage.BackupFees[*u.Backup]; !ok {
			return c, fmt.Errorf("invalid backup frequency %q", *u.Backup)
		}
		c.Backup = *u.Backup
	}
	if u.Region != nil {
		if err := validateRegion(cat, *u.Region); err != nil {
			return c, err
		}
		c.Region = *u.Region
	}
	if u.Tier != nil {
		if err := validateTier(cat, *u.Tier); err != nil {
			return c, err
		}
		c.Tier = *u.Tier
	}
	if u.Commitment != nil {
		if err := validateCommitment(*u.Commitment); err != nil {
			return c, err
		}
		c.Commitment = *u.Commitment
	}
	if u.Features != nil {
		if err := validateFeatures(ServiceStorage, cat.Storage.Features, *u.Features); err != nil {
			return c, err
		}
		c.Features = *u.Features
	}
	return c, nil
}

func (c StorageConfig) SummaryLines() []SummaryLine {
	return []SummaryLine{
		{"Capacity", fmt.Sprintf("%d GB", c.StorageGB)},
		{"Backups", titleCase(string(c.Backup))},
		{"Region", regionLabel(c.Region)},
		{"Tier", titleCase(string(c.Tier))},
		{"Billing", titleCase(string(c.Commitment))},
		{"Add-ons", featureSummary(c.Features)},
	}
}

// ── Security ─────────────────────────────────────────────────────────────

type SecurityConfig struct {
	Users      int
	Level      SecurityLevel
	Support    SupportLevel
	Region     Region
	Tier       Tier
	Commitment Commitment
	Features   []Feature
}

type SecurityUpdate struct {
	Users      *int
	Level      *SecurityLevel
	Support    *SupportLevel
	Region     *Region
	Tier       *Tier
	Commitment *Commitment
	Features   *[]Feature
}

func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		Users:      25,
		Level:      SecurityStandard,
		Support:    SupportBasic,
		Region:     RegionUAE,
		Tier:       TierBusiness,
		Commitment: CommitMonthly,
	}
}

func (c SecurityConfig) ServiceType() ServiceType      { return ServiceSecurity }
func (c SecurityConfig) BillingCommitment() Commitment { return c.Commitment }

func (c SecurityConfig) Apply(u SecurityUpdate, cat PricingCatalog) (SecurityConfig, error) {
	if u.Users != nil {
		c.Users = clampInt(*u.Users, MinUsers, MaxUsers)
	}
	if u.Level != nil {
		if _, ok := cat.Security.LevelFees[*u.Level]; !ok {
			return c, fmt.Errorf("invalid security level %q", *u.Level)
		}
		c.Level = *u.Level
	}
	if u.Support != nil {
		if _, ok := cat.Security.SupportFees[*u.Support]; !ok {
			return c, fmt.Errorf("invalid support level %q", *u.Support)
		}
		c.Support = *u.Support
	}
	if u.Region != nil {
		if err := validateRegion(cat, *u.Region); err != nil {
			return c, err
		}
		c.Region = *u.Region
	}
	if u.Tier != nil {
		if err := validateTier(cat, *u.Tier); err != nil {
			return c, err
		}
		c.Tier = *u.Tier
	}
	if u.Commitment != nil {
		if err := validateCommitment(*u.Commitment); err != nil {
			return c, err
		}
		c.Commitment = *u.Commitment
	}
	if u.Features != nil {
		if err := validateFeatures(ServiceSecurity, cat.Security.Features, *u.Features); err != nil {
			return c, err
		}
		c.Features = *u.Features
	}
	return c, nil
}

func (c SecurityConfig) SummaryLines() []SummaryLine {
	return []SummaryLine{
		{"Protected users", fmt.Sprintf("%d", c.Users)},
		{"Security level", titleCase(string(c.Level))},
		{"Support plan", titleCase(string(c.Support))},
		{"Region", regionLabel(c.Region)},
		{"Tier", titleCase(string(c.Tier))},
		{"Billing", titleCase(string(c.Commitment))},
		{"Add-ons", featureSummary(c.Features)},
	}
}

// ── Managed services ─────────────────────────────────────────────────────

type ManagedConfig struct {
	Size       ProjectSize
	Servers    int
	Databases  int
	Support    SupportLevel
	Region     Region
	Commitment Commitment
	Features   []Feature
}

type ManagedUpdate struct {
	Size       *ProjectSize
	Servers    *int
	Databases  *int
	Support    *SupportLevel
	Region     *Region
	Commitment *Commitment
	Features   *[]Feature
}

func DefaultManagedConfig() ManagedConfig {
	return ManagedConfig{
		Size:       SizeMedium,
		Servers:    3,
		Databases:  1,
		Support:    SupportBasic,
		Region:     RegionUAE,
		Commitment: CommitMonthly,
	}
}

func (c ManagedConfig) ServiceType() ServiceType      { return ServiceManaged }
func (c ManagedConfig) BillingCommitment() Commitment { return c.Commitment }

func (c ManagedConfig) Apply(u ManagedUpdate, cat PricingCatalog) (ManagedConfig, error) {
	if u.Size != nil {
		if _, ok := cat.Managed.BaseFees[*u.Size]; !ok {
			return c, fmt.Errorf("invalid project size %q", *u.Size)
		}
		c.Size = *u.Size
	}
	if u.Servers != nil {
		c.Servers = clampInt(*u.Servers, MinServers, MaxServers)
	}
	if u.Databases != nil {
		c.Databases = clampInt(*u.Databases, MinDatabases, MaxDatabases)
	}
	if u.Support != nil {
		if _, ok := cat.Managed.SupportFees[*u.Support]; !ok {
			return c, fmt.Errorf("invalid support level %q", *u.Support)
		}
		c.Support = *u.Support
	}
	if u.Region != nil {
		if err := validateRegion(cat, *u.Region); err != nil {
			return c, err
		}
		c.Region = *u.Region
	}
	if u.Commitment != nil {
		if err := validateCommitment(*u.Commitment); err != nil {
			return c, err
		}
		c.Commitment = *u.Commitment
	}
	if u.Features != nil {
		if err := validateFeatures(ServiceManaged, cat.Managed.Features, *u.Features); err != nil {
			return c, err
		}
		c.Features = *u.Features
	}
	return c, nil
}

func (c ManagedConfig) SummaryLines() []SummaryLine {
	return []SummaryLine{
		{"Environment size", titleCase(string(c.Size))},
		{"Managed servers", fmt.Sprintf("%d", c.Servers)},
		{"Managed databases", fmt.Sprintf("%d", c.Databases)},
		{"Support plan", titleCase(string(c.Support))},
		{"Region", regionLabel(c.Region)},
		{"Billing", titleCase(string(c.Commitment))},
		{"Add-ons", featureSummary(c.Features)},
	}
}

// ── Web development ──────────────────────────────────────────────────────

// WebDevConfig describes a one-time website build. There is no billing
// commitment: the derived subtotal is the project price and the maintenance
// plan is quoted as a separate recurring figure.
type WebDevConfig struct {
	Size        ProjectSize
	Timeline    Timeline
	Maintenance MaintenancePlan
	Tier        Tier
	Features    []Feature
}

type WebDevUpdate struct {
	Size        *ProjectSize
	Timeline    *Timeline
	Maintenance *MaintenancePlan
	Tier        *Tier
	Features    *[]Feature
}

func DefaultWebDevConfig() WebDevConfig {
	return WebDevConfig{
		Size:        SizeMedium,
		Timeline:    TimelineStandard,
		Maintenance: MaintenanceStandard,
		Tier:        TierStartup,
	}
}

func (c WebDevConfig) ServiceType() ServiceType      { return ServiceWebDev }
func (c WebDevConfig) BillingCommitment() Commitment { return CommitMonthly }

func (c WebDevConfig) Apply(u WebDevUpdate, cat PricingCatalog) (WebDevConfig, error) {
	if u.Size != nil {
		if _, ok := cat.WebDev.BaseFees[*u.Size]; !ok {
			return c, fmt.Errorf("invalid project size %q", *u.Size)
		}
		c.Size = *u.Size
	}
	if u.Timeline != nil {
		if _, ok := cat.WebDev.TimelineMultipliers[*u.Timeline]; !ok {
			return c, fmt.Errorf("invalid timeline %q", *u.Timeline)
		}
		c.Timeline = *u.Timeline
	}
	if u.Maintenance != nil {
		if _, ok := cat.WebDev.MaintenanceFees[*u.Maintenance]; !ok {
			return c, fmt.Errorf("invalid maintenance plan %q", *u.Maintenance)
		}
		c.Maintenance = *u.Maintenance
	}
	if u.Tier != nil {
		if err := validateTier(cat, *u.Tier); err != nil {
			return c, err
		}
		c.Tier = *u.Tier
	}
	if u.Features != nil {
		if err := validateFeatures(ServiceWebDev, cat.WebDev.Features, *u.Features); err != nil {
			return c, err
		}
		c.Features = *u.Features
	}
	return c, nil
}

func (c WebDevConfig) SummaryLines() []SummaryLine {
	return []SummaryLine{
		{"Project size", titleCase(string(c.Size))},
		{"Timeline", titleCase(string(c.Timeline))},
		{"Maintenance plan", titleCase(string(c.Maintenance))},
		{"Tier", titleCase(string(c.Tier))},
		{"Features", featureSummary(c.Features)},
	}
}

// ── Display helpers ──────────────────────────────────────────────────────

func regionLabel(r Region) string {
	switch r {
	case RegionUAE:
		return "UAE"
	case RegionUS:
		return "United States"
	case RegionEurope:
		return "Europe"
	case RegionAsia:
		return "Asia Pacific"
	}
	return string(r)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func featureSummary(features []Feature) string {
	if len(features) == 0 {
		return "None"
	}
	out := ""
	for i, f := range features {
		if i > 0 {
			out += ", "
		}
		out += titleCase(string(f))
	}
	return out
}
