package services

import (
	"bytes"
	"fmt"
	"html/template"
)

// quoteHTMLTmpl is the fallback document: pure text templating, no
// embedded fonts or images, so it has far fewer ways to fail than the PDF
// path.
var quoteHTMLTmpl = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.IssuerName}} — Quotation {{.Reference}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; color: #212529; margin: 40px auto; max-width: 720px; }
h1 { font-size: 22px; text-align: center; margin-bottom: 0; }
h2 { font-size: 14px; border-bottom: 1px solid #dee2e6; padding-bottom: 4px; margin-top: 28px; }
.subtitle { text-align: center; color: #505050; margin-top: 4px; }
.meta { display: flex; justify-content: space-between; color: #505050; font-size: 13px; margin-top: 16px; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th { background: #212529; color: #fff; text-align: left; padding: 6px 8px; }
th.amount, td.amount { text-align: right; }
td { padding: 5px 8px; border-bottom: 1px solid #eee; }
td.discount { color: #006e3c; }
.totals td { font-weight: bold; background: #f0f0f0; }
.terms { font-size: 11px; color: #646464; }
.footer { text-align: center; font-size: 11px; color: #8c8c8c; margin-top: 32px; }
</style>
</head>
<body>
<h1>{{.IssuerName}}</h1>
<p class="subtitle">{{.ServiceLabel}} Quotation</p>
<div class="meta">
<span>Reference: {{.Reference}}<br>Currency: AED</span>
<span>Issued: {{.IssueDate}}<br>Valid until: {{.ValidUntil}}</span>
</div>

<h2>Configuration</h2>
<table>
{{range .Summary}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>

<h2>Price Breakdown</h2>
<table>
<tr><th>Item</th><th class="amount">Monthly (AED)</th></tr>
{{range .Lines}}<tr><td>{{.Label}}</td><td class="amount{{if .Discount}} discount{{end}}">{{.Amount}}</td></tr>
{{end}}<tr class="totals"><td>{{.SubtotalLabel}}</td><td class="amount">{{.Subtotal}}</td></tr>
{{if .Discounted}}<tr class="totals"><td>After tier discount</td><td class="amount">{{.Discounted}}</td></tr>
{{end}}{{if .AnnualMonthly}}<tr class="totals"><td>Monthly with annual commitment</td><td class="amount">{{.AnnualMonthly}}</td></tr>
{{end}}<tr class="totals"><td>VAT (5%)</td><td class="amount">{{.Tax}}</td></tr>
<tr class="totals"><td>{{.TotalLabel}}</td><td class="amount">{{.Total}}</td></tr>
{{if .SetupFee}}<tr class="totals"><td>One-time setup fee</td><td class="amount">{{.SetupFee}}</td></tr>
{{end}}{{if .Maintenance}}<tr class="totals"><td>Monthly maintenance</td><td class="amount">{{.Maintenance}}</td></tr>
{{end}}{{if .AnnualTotal}}<tr class="totals"><td>Annual total (excl. VAT)</td><td class="amount">{{.AnnualTotal}}</td></tr>
<tr class="totals"><td>Annual total (incl. VAT)</td><td class="amount">{{.AnnualTotalWithTax}}</td></tr>
<tr class="totals"><td>Annual savings</td><td class="amount">{{.AnnualSavings}}</td></tr>
{{end}}</table>

<h2>Terms &amp; Conditions</h2>
<ol class="terms">
{{range .Terms}}<li>{{.}}</li>
{{end}}</ol>

<p class="footer">{{.IssuerEmail}} · {{.IssuerPhone}} · {{.IssuerWebsite}}<br>{{.IssuerAddress}}</p>
</body>
</html>
`))

type quoteHTMLLine struct {
	Label    string
	Amount   string
	Discount bool
}

type quoteHTMLView struct {
	IssuerName         string
	IssuerEmail        string
	IssuerPhone        string
	IssuerWebsite      string
	IssuerAddress      string
	ServiceLabel       string
	Reference          string
	IssueDate          string
	ValidUntil         string
	Summary            []SummaryLine
	Lines              []quoteHTMLLine
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
	Terms              []string
}

// RenderQuoteHTML renders a quote as a standalone HTML document. It shares
// the exact content contract with the PDF renderer and, like it, never
// recomputes any amount.
func RenderQuoteHTML(q Quote) ([]byte, error) {
	b := q.Breakdown

	view := quoteHTMLView{
		IssuerName:    q.Issuer.Name,
		IssuerEmail:   q.Issuer.Email,
		IssuerPhone:   q.Issuer.Phone,
		IssuerWebsite: q.Issuer.Website,
		IssuerAddress: q.Issuer.Address,
		ServiceLabel:  serviceLabel(q.ServiceType),
		Reference:     q.Reference,
		IssueDate:     q.IssueDate.Format("02 Jan 2006"),
		ValidUntil:    q.ValidUntil.Format("02 Jan 2006"),
		Summary:       q.Config.SummaryLines(),
		SubtotalLabel: subtotalLabel(b.ServiceType),
		Subtotal:      FormatAED(b.MonthlySubtotal),
		Tax:           FormatAED(b.TaxAmount),
		TotalLabel:    totalLabel(b.ServiceType),
		Total:         FormatAED(b.MonthlyTotal),
		Terms:         QuoteTerms(),
	}

	for _, line := range b.Lines {
		view.Lines = append(view.Lines, quoteHTMLLine{
			Label:    line.Label,
			Amount:   FormatAmount(line.Amount),
			Discount: line.Amount.IsNegative(),
		})
	}

	if !b.DiscountedSubtotal.Equal(b.MonthlySubtotal) {
		view.Discounted = FormatAED(b.DiscountedSubtotal)
	}
	if b.SetupFee.IsPositive() {
		view.SetupFee = FormatAED(b.SetupFee)
	}
	if b.MonthlyMaintenance.IsPositive() {
		view.Maintenance = FormatAED(b.MonthlyMaintenance)
	}
	if b.Annual != nil {
		view.AnnualMonthly = FormatAED(b.Annual.DiscountedMonthlySubtotal)
		view.AnnualTotal = FormatAED(b.Annual.AnnualTotal)
		view.AnnualTotalWithTax = FormatAED(b.Annual.AnnualTotalWithTax)
		view.AnnualSavings = FormatAED(b.Annual.AnnualSavings)
	}

	var buf bytes.Buffer
	if err := quoteHTMLTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render quote HTML: %w", err)
	}
	return buf.Bytes(), nil
}
