package pager

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// labels may carry markup or entities from a template; they are reduced to
// escaped text.
var labelPolicy = bluemonday.StrictPolicy()

// RenderOptions controls how a plan is turned into markup.
type RenderOptions struct {
	// ClassName is the class of the <ul>. Defaults to "pager".
	ClassName string
	// Center adds the "center" class used by the compact variant.
	Center bool
	// Href returns the unescaped URL of a page.
	Href func(page int) string
}

// Render wraps links in a <ul>, one <li> per link.
func Render(links []Link, o RenderOptions) string {
	class := o.ClassName
	if class == "" {
		class = "pager"
	}
	if o.Center {
		class += " center"
	}
	href := o.Href
	if href == nil {
		href = func(int) string { return "#" }
	}

	var b strings.Builder
	b.WriteString(`<ul class="`)
	b.WriteString(html.EscapeString(class))
	b.WriteString(`">`)
	for _, l := range links {
		b.WriteString("<li>")
		writeAnchor(&b, l, href)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func writeAnchor(b *strings.Builder, l Link, href func(int) string) {
	label := labelPolicy.Sanitize(l.Label)

	if l.Kind == KindCurrent {
		b.WriteString(`<a class="current" href="#">`)
		b.WriteString(label)
		b.WriteString("</a>")
		return
	}

	b.WriteString("<a")
	if l.Kind != KindPage {
		b.WriteString(` class="`)
		b.WriteString(l.Kind.String())
		b.WriteString(`"`)
	}
	if l.Rel != RelNone {
		b.WriteString(` rel="`)
		b.WriteString(string(l.Rel))
		b.WriteString(`"`)
	}
	b.WriteString(` href="`)
	b.WriteString(html.EscapeString(href(l.Page)))
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString("</a>")
}
