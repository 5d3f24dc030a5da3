package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// serviceCard describes one offering on the services and pricing pages.
type serviceCard struct {
	Slug        string
	Name        string
	Tagline     string
	StartingAt  string
	BillingUnit string
}

var serviceCards = []serviceCard{
	{"compute", "Cloud Compute", "Virtual machines sized to your workload, billed monthly.", "AED 35", "per month"},
	{"storage", "Cloud Storage", "Durable block and object storage with backup schedules.", "AED 12.50", "per month"},
	{"security", "Cybersecurity", "Endpoint protection, monitoring and incident support.", "AED 45", "per user / month"},
	{"managed-services", "Managed IT Services", "Your infrastructure run by our engineers.", "AED 1,500", "per month"},
	{"web-development", "Web Development", "Corporate sites and web apps, delivered end to end.", "AED 8,000", "per project"},
}

// HomePage renders the landing page.
func HomePage() templ.Component {
	return Layout("Cloud & IT Services", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<section class="hero">
<h1>Enterprise cloud and IT services for the UAE</h1>
<p>Compute, storage, security and managed services with transparent monthly pricing. Configure a service and download a quote in under a minute.</p>
<a class="cta" href="/pricing">Get an instant quote</a>
</section>
<section class="cards">
`)
		for _, c := range serviceCards {
			fmt.Fprintf(w, `<article class="card">
<h2>%s</h2>
<p>%s</p>
<a href="/calculators/%s">Configure &amp; price</a>
</article>
`, templ.EscapeString(c.Name), templ.EscapeString(c.Tagline), c.Slug)
		}
		_, err := io.WriteString(w, `</section>
`)
		return err
	}))
}

// ServicesPage renders the service catalogue overview.
func ServicesPage() templ.Component {
	return Layout("Services", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1>Our services</h1>
<section class="cards">
`)
		for _, c := range serviceCards {
			fmt.Fprintf(w, `<article class="card">
<h2>%s</h2>
<p>%s</p>
<p class="price">Starting at %s <span>%s</span></p>
<a href="/calculators/%s">Open calculator</a>
</article>
`, templ.EscapeString(c.Name), templ.EscapeString(c.Tagline),
				templ.EscapeString(c.StartingAt), templ.EscapeString(c.BillingUnit), c.Slug)
		}
		_, err := io.WriteString(w, `</section>
`)
		return err
	}))
}

// PricingPage renders the pricing hub linking to all five calculators.
func PricingPage() templ.Component {
	return Layout("Pricing", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1>Pricing calculators</h1>
<p>Pick a service, adjust the configuration and see the monthly price update live. Every calculator can export a formal quotation valid for 7 days.</p>
<ul class="calculator-list">
`)
		for _, c := range serviceCards {
			fmt.Fprintf(w, `<li><a href="/calculators/%s">%s</a> — starting at %s %s</li>
`, c.Slug, templ.EscapeString(c.Name), templ.EscapeString(c.StartingAt), templ.EscapeString(c.BillingUnit))
		}
		_, err := io.WriteString(w, `</ul>
`)
		return err
	}))
}

// ContactData carries the contact form state, including quote context passed
// through from a calculator and validation errors keyed by field name.
type ContactData struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	Message        string
	ServiceType    string
	QuoteReference string
	MonthlyPrice   string
	Errors         map[string]string
	Submitted      bool
}

// ContactPage renders the contact / lead capture form.
func ContactPage(data ContactData) templ.Component {
	return Layout("Contact", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1>Talk to our sales team</h1>
`)
		if data.Submitted {
			io.WriteString(w, `<p class="flash">Thank you — we received your enquiry and will reply within one business day.</p>
`)
		}
		if data.QuoteReference != "" {
			fmt.Fprintf(w, `<p class="quote-context">Regarding quote <strong>%s</strong> (%s, %s/month)</p>
`, templ.EscapeString(data.QuoteReference), templ.EscapeString(data.ServiceType), templ.EscapeString(data.MonthlyPrice))
		}
		io.WriteString(w, `<form method="post" action="/contact" class="contact-form">
`)
		fmt.Fprintf(w, `<input type="hidden" name="service_type" value="%s">
<input type="hidden" name="quote_reference" value="%s">
<input type="hidden" name="monthly_price" value="%s">
`, templ.EscapeString(data.ServiceType), templ.EscapeString(data.QuoteReference), templ.EscapeString(data.MonthlyPrice))
		if msg, ok := data.Errors["service_type"]; ok {
			fmt.Fprintf(w, `<p class="field-error">%s</p>
`, templ.EscapeString(msg))
		}
		textInput(w, "name", "Name", data.Name, data.Errors)
		textInput(w, "email", "Work email", data.Email, data.Errors)
		textInput(w, "phone", "Phone", data.Phone, data.Errors)
		textInput(w, "company", "Company", data.Company, data.Errors)
		fmt.Fprintf(w, `<label for="message">Message</label>
<textarea id="message" name="message" rows="5">%s</textarea>
`, templ.EscapeString(data.Message))
		if msg, ok := data.Errors["message"]; ok {
			fmt.Fprintf(w, `<p class="field-error">%s</p>
`, templ.EscapeString(msg))
		}
		_, err := io.WriteString(w, `<button type="submit">Send enquiry</button>
</form>
`)
		return err
	}))
}

func textInput(w io.Writer, name, label, value string, errors map[string]string) {
	fmt.Fprintf(w, `<label for="%s">%s</label>
<input id="%s" type="text" name="%s" value="%s">
`, name, templ.EscapeString(label), name, name, templ.EscapeString(value))
	if msg, ok := errors[name]; ok {
		fmt.Fprintf(w, `<p class="field-error">%s</p>
`, templ.EscapeString(msg))
	}
}
