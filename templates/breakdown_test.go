package templates

import (
	"context"
	"strings"
	"testing"

	"cloudedge/services"
)

func renderFragment(t *testing.T, cfg services.ServiceConfiguration) string {
	t.Helper()
	cat := services.DefaultCatalog()
	var sb strings.Builder
	view := NewBreakdownView(services.Derive(cfg, cat))
	if err := BreakdownFragment(view).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestContactLinkCarriesQuoteContext(t *testing.T) {
	tests := []struct {
		name string
		cfg  services.ServiceConfiguration
		want []string
	}{
		{
			name: "managed carries size",
			cfg:  services.DefaultManagedConfig(),
			want: []string{
				"service=managed-services",
				"reference=QMSP-",
				"size=" + string(services.SizeMedium),
				"commitment=monthly",
				"price=AED",
			},
		},
		{
			name: "compute carries tier",
			cfg:  services.DefaultComputeConfig(),
			want: []string{
				"service=compute",
				"reference=QCMP-",
				"tier=" + string(services.TierBusiness),
				"commitment=monthly",
				"price=AED",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderFragment(t, tt.cfg)
			for _, w := range tt.want {
				if !strings.Contains(html, w) {
					t.Errorf("contact link is missing %q in:\n%s", w, html)
				}
			}
		})
	}
}

func TestContactLinkOmitsInapplicableFields(t *testing.T) {
	html := renderFragment(t, services.DefaultManagedConfig())
	if strings.Contains(html, "tier=") {
		t.Error("managed services has no pricing tier, yet the link carries one")
	}
	if compute := renderFragment(t, services.DefaultComputeConfig()); strings.Contains(compute, "size=") {
		t.Error("compute has no project size, yet the link carries one")
	}
}
