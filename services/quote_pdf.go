package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderQuotePDF renders a quote as a PDF document using maroto/v2.
// It returns the raw PDF bytes or an error; the caller decides whether to
// fall back to the HTML renderer.
func RenderQuotePDF(q Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, q)
	addConfigSummary(m, q)
	addBreakdownTable(m, q)
	addTotals(m, q)
	addTerms(m)
	addQuoteFooter(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the issuer identity, quote reference and dates.
func addQuoteHeader(m core.Maroto, q Quote) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(q.Issuer.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s Quotation", serviceLabel(q.ServiceType)), props.Text{
					Size:  11,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", q.Reference), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Issued: %s", q.IssueDate.Format("02 Jan 2006")), metaRight),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New("Currency: AED", meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Valid until: %s", q.ValidUntil.Format("02 Jan 2006")), metaRight),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addConfigSummary adds the human-labeled configuration snapshot.
func addConfigSummary(m core.Maroto, q Quote) {
	addSectionTitle(m, "Configuration")

	label := props.Text{Size: 8, Align: align.Left, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}
	value := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}

	for _, line := range q.Config.SummaryLines() {
		m.AddRows(
			row.New(6).Add(
				col.New(4).Add(text.New(line.Label, label)),
				col.New(8).Add(text.New(line.Value, value)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addBreakdownTable renders the itemized price breakdown verbatim.
func addBreakdownTable(m core.Maroto, q Quote) {
	addSectionTitle(m, "Price Breakdown")

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Item", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Monthly (AED)", headerTextRight),
			).WithStyle(&headerCell),
		),
	)

	itemText := props.Text{Size: 8, Align: align.Left}
	amountText := props.Text{Size: 8, Align: align.Right}
	discountText := amountText
	discountText.Color = &props.Color{Red: 0, Green: 110, Blue: 60}

	for _, line := range q.Breakdown.Lines {
		amtStyle := amountText
		if line.Amount.IsNegative() {
			amtStyle = discountText
		}
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(line.Label, itemText)),
				col.New(4).Add(text.New(FormatAmount(line.Amount), amtStyle)),
			),
		)
	}
}

// addTotals adds the subtotal, tax, total and annual summary rows.
func addTotals(m core.Maroto, q Quote) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	addTotal := func(label string, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	b := q.Breakdown
	addTotal(subtotalLabel(b.ServiceType), FormatAED(b.MonthlySubtotal))
	if !b.DiscountedSubtotal.Equal(b.MonthlySubtotal) {
		addTotal("After tier discount", FormatAED(b.DiscountedSubtotal))
	}
	if b.Annual != nil {
		addTotal("Monthly with annual commitment", FormatAED(b.Annual.DiscountedMonthlySubtotal))
	}
	addTotal("VAT (5%)", FormatAED(b.TaxAmount))
	addTotal(totalLabel(b.ServiceType), FormatAED(b.MonthlyTotal))
	if b.SetupFee.IsPositive() {
		addTotal("One-time setup fee", FormatAED(b.SetupFee))
	}
	if b.MonthlyMaintenance.IsPositive() {
		addTotal("Monthly maintenance", FormatAED(b.MonthlyMaintenance))
	}
	if b.Annual != nil {
		addTotal("Annual total (excl. VAT)", FormatAED(b.Annual.AnnualTotal))
		addTotal("Annual total (incl. VAT)", FormatAED(b.Annual.AnnualTotalWithTax))
		addTotal("Annual savings", FormatAED(b.Annual.AnnualSavings))
	}
}

// addTerms adds the fixed boilerplate terms section.
func addTerms(m core.Maroto) {
	m.AddRows(row.New(6))
	addSectionTitle(m, "Terms & Conditions")

	termText := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	for i, term := range quoteTerms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("%d. %s", i+1, term), termText),
				),
			),
		)
	}
}

// addQuoteFooter adds the issuer contact block.
func addQuoteFooter(m core.Maroto, q Quote) {
	m.AddRows(row.New(6))

	footer := props.Text{
		Size:  7,
		Align: align.Center,
		Color: &props.Color{Red: 140, Green: 140, Blue: 140},
	}
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s · %s · %s", q.Issuer.Email, q.Issuer.Phone, q.Issuer.Website), footer),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(q.Issuer.Address, footer),
			),
		),
	)
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

// serviceLabel is the display name of a calculator family.
func serviceLabel(st ServiceType) string {
	switch st {
	case ServiceCompute:
		return "Cloud Compute"
	case ServiceStorage:
		return "Cloud Storage"
	case ServiceSecurity:
		return "Managed Security"
	case ServiceManaged:
		return "Managed Services"
	case ServiceWebDev:
		return "Web Development"
	}
	return string(st)
}

// subtotalLabel and totalLabel name the headline figures; the web
// development family is the one-time-priced exception.
func subtotalLabel(st ServiceType) string {
	if st == ServiceWebDev {
		return "Project subtotal"
	}
	return "Monthly subtotal"
}

func totalLabel(st ServiceType) string {
	if st == ServiceWebDev {
		return "Project total (incl. VAT)"
	}
	return "Monthly total (incl. VAT)"
}
