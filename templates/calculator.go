package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Option is one choice in a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// NumberField is a slider-backed numeric control.
type NumberField struct {
	Name  string
	Label string
	Value int
	Min   int
	Max   int
	Unit  string
}

// SelectField is a dropdown control.
type SelectField struct {
	Name    string
	Label   string
	Options []Option
}

// FeatureToggle is one add-on checkbox with its price tag.
type FeatureToggle struct {
	ID      string
	Label   string
	Price   string
	Checked bool
}

// CalculatorData drives the shared calculator page shell. Handlers assemble
// the field lists per family; the template stays family-agnostic.
type CalculatorData struct {
	Slug      string
	Title     string
	Intro     string
	Numbers   []NumberField
	Selects   []SelectField
	Features  []FeatureToggle
	Breakdown BreakdownView
}

// CalculatorPage renders a full calculator page. Field changes re-price via
// htmx into #breakdown; the submit button posts the same form to the quote
// endpoint for a document download.
func CalculatorPage(data CalculatorData) templ.Component {
	return Layout(data.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<h1>%s</h1>
<p class="intro">%s</p>
<div class="calculator">
<form class="calculator-form" method="post" action="/calculators/%s/quote"
 hx-post="/calculators/%s/price" hx-trigger="change" hx-target="#breakdown" hx-swap="innerHTML">
`, templ.EscapeString(data.Title), templ.EscapeString(data.Intro), data.Slug, data.Slug)

		for _, f := range data.Numbers {
			fmt.Fprintf(w, `<label for="%s">%s</label>
<div class="slider-row">
<input id="%s" type="range" name="%s" value="%d" min="%d" max="%d"
 oninput="this.nextElementSibling.textContent = this.value">
<output>%d</output><span class="unit">%s</span>
</div>
`, f.Name, templ.EscapeString(f.Label), f.Name, f.Name, f.Value, f.Min, f.Max, f.Value, templ.EscapeString(f.Unit))
		}

		for _, f := range data.Selects {
			fmt.Fprintf(w, `<label for="%s">%s</label>
<select id="%s" name="%s">
`, f.Name, templ.EscapeString(f.Label), f.Name, f.Name)
			for _, o := range f.Options {
				sel := ""
				if o.Selected {
					sel = " selected"
				}
				fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, templ.EscapeString(o.Value), sel, templ.EscapeString(o.Label))
			}
			io.WriteString(w, `</select>
`)
		}

		if len(data.Features) > 0 {
			io.WriteString(w, `<fieldset class="features">
<legend>Add-ons</legend>
`)
			for _, f := range data.Features {
				checked := ""
				if f.Checked {
					checked = " checked"
				}
				fmt.Fprintf(w, `<label class="feature"><input type="checkbox" name="features" value="%s"%s> %s <span class="price">+%s</span></label>
`, templ.EscapeString(f.ID), checked, templ.EscapeString(f.Label), templ.EscapeString(f.Price))
			}
			io.WriteString(w, `</fieldset>
`)
		}

		io.WriteString(w, `<button type="submit" class="cta">Download quote</button>
</form>
<div id="breakdown" class="breakdown-panel">
`)
		if err := BreakdownFragment(data.Breakdown).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprintf(w, `</div>
</div>
<p class="quote-note">Quotes are valid for 7 days. Need help choosing? <a href="/contact?service=%s">Talk to sales</a>.</p>
`, data.Slug)
		return nil
	}))
}
