package services

import (
	"fmt"
	"log"
	"time"
)

// QuoteFormat records which rendering path produced the document.
type QuoteFormat string

const (
	QuoteFormatPDF  QuoteFormat = "pdf"
	QuoteFormatHTML QuoteFormat = "html"
)

// Issuer identifies the company on the quote header and footer.
type Issuer struct {
	Name         string
	Email        string
	Phone        string
	Website      string
	Address      string
	ValidityDays int
}

// Quote is an immutable snapshot of a configuration and its computed price
// at generation time. Later configuration changes never alter an already
// generated quote. Quotes are handed to the client as a download and are
// not retained server-side.
type Quote struct {
	Reference   string
	IssueDate   time.Time
	ValidUntil  time.Time
	ServiceType ServiceType
	Config      ServiceConfiguration
	Breakdown   PriceBreakdown
	Issuer      Issuer
	Format      QuoteFormat
	Filename    string
	Content     []byte
}

// quoteTerms is the fixed boilerplate included on every quote.
var quoteTerms = []string{
	"Prices are quoted in AED and exclusive of any charges not itemized above.",
	"This quotation is valid until the date shown; configurations are re-priced after expiry.",
	"Recurring charges are billed at the start of each billing period.",
	"One-time setup fees are invoiced on service activation.",
	"VAT is applied at the prevailing UAE rate at the time of invoicing.",
}

// QuoteTerms returns the boilerplate terms shown on every quote document.
func QuoteTerms() []string {
	out := make([]string, len(quoteTerms))
	copy(out, quoteTerms)
	return out
}

var quoteTypeCodes = map[ServiceType]string{
	ServiceCompute:  "CMP",
	ServiceStorage:  "STO",
	ServiceSecurity: "SEC",
	ServiceManaged:  "MSP",
	ServiceWebDev:   "WEB",
}

// QuoteReference builds a short, shareable reference from the service type
// and the millisecond timestamp, e.g. "QCMP-847291". It is a display
// convenience, unique with high probability within one process, not a
// primary key.
func QuoteReference(st ServiceType, now time.Time) string {
	code, ok := quoteTypeCodes[st]
	if !ok {
		panic(fmt.Sprintf("quote: unknown service type %q", st))
	}
	return fmt.Sprintf("Q%s-%06d", code, now.UnixMilli()%1_000_000)
}

// QuoteFilename builds the deterministic download name:
// cloudedge-<family>-quote-<reference>-<date>.<ext>.
func QuoteFilename(st ServiceType, reference string, issued time.Time, format QuoteFormat) string {
	return fmt.Sprintf("cloudedge-%s-quote-%s-%s.%s",
		st, reference, issued.Format("2006-01-02"), format)
}

// QuoteGenerator renders quotes. The primary renderer produces a PDF; if
// it fails for any reason the generator logs the failure and falls back to
// the plain HTML renderer, which has no binary assets and far fewer
// failure modes. Only when both renderers fail does Generate return an
// error. The renderer hooks and clock are injectable for tests.
type QuoteGenerator struct {
	issuer     Issuer
	now        func() time.Time
	renderPDF  func(Quote) ([]byte, error)
	renderHTML func(Quote) ([]byte, error)
}

func NewQuoteGenerator(issuer Issuer) *QuoteGenerator {
	if issuer.ValidityDays <= 0 {
		issuer.ValidityDays = 7
	}
	return &QuoteGenerator{
		issuer:     issuer,
		now:        time.Now,
		renderPDF:  RenderQuotePDF,
		renderHTML: RenderQuoteHTML,
	}
}

// Generate snapshots the configuration and breakdown into a quote document.
// The breakdown is rendered verbatim; the generator never re-prices.
func (g *QuoteGenerator) Generate(cfg ServiceConfiguration, breakdown PriceBreakdown) (Quote, error) {
	issued := g.now()
	q := Quote{
		Reference:   QuoteReference(cfg.ServiceType(), issued),
		IssueDate:   issued,
		ValidUntil:  issued.AddDate(0, 0, g.issuer.ValidityDays),
		ServiceType: cfg.ServiceType(),
		Config:      cfg,
		Breakdown:   breakdown,
		Issuer:      g.issuer,
	}

	content, err := g.renderPDF(q)
	if err == nil {
		q.Format = QuoteFormatPDF
		q.Content = content
		q.Filename = QuoteFilename(q.ServiceType, q.Reference, issued, q.Format)
		return q, nil
	}
	log.Printf("quote: pdf render failed for %s, falling back to html: %v", q.Reference, err)

	content, err = g.renderHTML(q)
	if err != nil {
		return Quote{}, fmt.Errorf("quote %s: both render paths failed: %w", q.Reference, err)
	}
	q.Format = QuoteFormatHTML
	q.Content = content
	q.Filename = QuoteFilename(q.ServiceType, q.Reference, issued, q.Format)
	return q, nil
}
