// Package templates renders the site's HTML pages and fragments.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// navLink is one entry in the top navigation bar.
type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/services", "Services"},
	{"/pricing", "Pricing"},
	{"/contact", "Contact"},
}

// Layout wraps a page body in the shared chrome: head, navigation and footer.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — CloudEdge Technologies</title>
<link rel="stylesheet" href="/static/site.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<header class="site-header">
<a class="brand" href="/">CloudEdge Technologies</a>
<nav>`, templ.EscapeString(title))
		for _, l := range navLinks {
			fmt.Fprintf(w, `<a href="%s">%s</a>`, l.Href, templ.EscapeString(l.Label))
		}
		io.WriteString(w, `</nav>
</header>
<main>
`)
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<footer class="site-footer">
<p>CloudEdge Technologies · Dubai, UAE · All prices in AED, VAT 5% applies.</p>
<form class="newsletter" method="post" action="/newsletter">
<label for="newsletter-email">Newsletter</label>
<input id="newsletter-email" type="email" name="email" placeholder="you@company.com" required>
<button type="submit">Subscribe</button>
</form>
</footer>
</body>
</html>
`)
		return err
	})
}
