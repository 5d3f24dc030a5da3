package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"cloudedge/services"
)

// BreakdownRow is one formatted line in the rendered price table.
type BreakdownRow struct {
	Label    string
	Amount   string
	Discount bool
}

// BreakdownView is the display model for a derived price. All amounts are
// preformatted strings; optional rows are signalled by the empty string.
type BreakdownView struct {
	Rows               []BreakdownRow
	SubtotalLabel      string
	Subtotal           string
	Discounted         string
	AnnualMonthly      string
	Tax                string
	TotalLabel         string
	Total              string
	SetupFee           string
	Maintenance        string
	AnnualTotal        string
	AnnualTotalWithTax string
	AnnualSavings      string

	// ContactQuery is the pre-encoded query string for the contact-sales
	// link: service, quote reference, tier or size, commitment and the
	// computed price travel with the enquiry.
	ContactQuery string
}

// NewBreakdownView formats a derived price for display.
func NewBreakdownView(b services.PriceBreakdown) BreakdownView {
	v := BreakdownView{
		SubtotalLabel: "Subtotal",
		Subtotal:      services.FormatAED(b.MonthlySubtotal),
		Tax:           services.FormatAED(b.TaxAmount),
		TotalLabel:    "Monthly total (incl. VAT)",
		Total:         services.FormatAED(b.MonthlyTotal),
	}
	if b.ServiceType == services.ServiceWebDev {
		v.SubtotalLabel = "Project subtotal"
		v.TotalLabel = "Project total (incl. VAT)"
	}
	for _, line := range b.Lines {
		v.Rows = append(v.Rows, BreakdownRow{
			Label:    line.Label,
			Amount:   services.FormatAmount(line.Amount),
			Discount: line.Amount.IsNegative(),
		})
	}
	if !b.DiscountedSubtotal.Equal(b.MonthlySubtotal) {
		v.Discounted = services.FormatAED(b.DiscountedSubtotal)
	}
	if b.SetupFee.IsPositive() {
		v.SetupFee = services.FormatAED(b.SetupFee)
	}
	if b.MonthlyMaintenance.IsPositive() {
		v.Maintenance = services.FormatAED(b.MonthlyMaintenance)
	}
	if b.Annual != nil {
		v.AnnualMonthly = services.FormatAED(b.Annual.DiscountedMonthlySubtotal)
		v.AnnualTotal = services.FormatAED(b.Annual.AnnualTotal)
		v.AnnualTotalWithTax = services.FormatAED(b.Annual.AnnualTotalWithTax)
		v.AnnualSavings = services.FormatAED(b.Annual.AnnualSavings)
	}
	q := url.Values{
		"service":    {string(b.ServiceType)},
		"reference":  {services.QuoteReference(b.ServiceType, time.Now())},
		"commitment": {string(b.Commitment)},
		"price":      {v.Total},
	}
	if b.Tier != "" {
		q.Set("tier", string(b.Tier))
	}
	if b.Size != "" {
		q.Set("size", string(b.Size))
	}
	v.ContactQuery = q.Encode()
	return v
}

// BreakdownFragment renders the price table. It is both embedded in the full
// calculator page and returned standalone for htmx swaps.
func BreakdownFragment(v BreakdownView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<table class="breakdown">
<thead><tr><th>Item</th><th class="amount">AED</th></tr></thead>
<tbody>
`)
		for _, r := range v.Rows {
			cls := "amount"
			if r.Discount {
				cls = "amount discount"
			}
			fmt.Fprintf(w, `<tr><td>%s</td><td class="%s">%s</td></tr>
`, templ.EscapeString(r.Label), cls, templ.EscapeString(r.Amount))
		}
		fmt.Fprintf(w, `</tbody>
<tfoot>
<tr class="total"><td>%s</td><td class="amount">%s</td></tr>
`, templ.EscapeString(v.SubtotalLabel), templ.EscapeString(v.Subtotal))
		writeTotalRow(w, "After tier discount", v.Discounted)
		writeTotalRow(w, "Monthly with annual commitment", v.AnnualMonthly)
		writeTotalRow(w, "VAT (5%)", v.Tax)
		writeTotalRow(w, v.TotalLabel, v.Total)
		writeTotalRow(w, "One-time setup fee", v.SetupFee)
		writeTotalRow(w, "Monthly maintenance", v.Maintenance)
		writeTotalRow(w, "Annual total (excl. VAT)", v.AnnualTotal)
		writeTotalRow(w, "Annual total (incl. VAT)", v.AnnualTotalWithTax)
		writeTotalRow(w, "Annual savings", v.AnnualSavings)
		if _, err := io.WriteString(w, `</tfoot>
</table>
`); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<p class="fragment-contact"><a href="/contact?%s">Discuss this price with sales</a></p>
`, templ.EscapeString(v.ContactQuery))
		return err
	})
}

func writeTotalRow(w io.Writer, label, amount string) {
	if amount == "" {
		return
	}
	fmt.Fprintf(w, `<tr class="total"><td>%s</td><td class="amount">%s</td></tr>
`, templ.EscapeString(label), templ.EscapeString(amount))
}
