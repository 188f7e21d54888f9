package pager

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// Template holds the labels used for the navigation links.
// Page is the word prefixed to the current page number in the centered variant.
type Template struct {
	Page  string
	First string
	Prev  string
	Next  string
	Last  string
}

// DefaultTemplate returns the glyph labels used when nothing else is configured.
func DefaultTemplate() Template {
	return Template{Page: "Page", First: "«", Prev: "‹", Next: "›", Last: "»"}
}

// Options is the static configuration of a Pager.
// Zero values are not meaningful; start from DefaultOptions.
type Options struct {
	// StartKey is the query parameter holding the 1-based page index.
	StartKey string
	// StopKey is the query parameter holding the page size.
	StopKey string
	// PageSizeMax caps the page size. Larger requested values are redirected.
	PageSizeMax int
	// PageSizeDefault is used when the request carries no usable page size.
	PageSizeDefault int
	// LinksLimit is the maximum number of numbered links in a window.
	LinksLimit int
	// LinksClassName is the CSS class of the rendered <ul>.
	LinksClassName string
	Template       Template
	// Autorun makes Run read page index and size from the request.
	// With Autorun off, the values given to Preset are used instead.
	Autorun bool
	// NumerateFirstLast renders first/last links as page numbers instead of glyphs.
	NumerateFirstLast bool
	// ArgSep joins query string pairs in generated links.
	ArgSep string
}

// DefaultOptions returns the stock configuration: keys s/ss, ten rows per page,
// at most 1000, five numbered links.
func DefaultOptions() Options {
	return Options{
		StartKey:        "s",
		StopKey:         "ss",
		PageSizeMax:     1000,
		PageSizeDefault: 10,
		LinksLimit:      5,
		LinksClassName:  "pager",
		Template:        DefaultTemplate(),
		Autorun:         true,
		ArgSep:          "&",
	}
}

// option names after normalization, with their aliases.
var optionAliases = map[string]string{
	"stopMax":     "pageSizeMax",
	"stopDefault": "pageSizeDefault",
	"linkLimit":   "linksLimit",
}

var forbiddenOptions = map[string]bool{
	"start":    true,
	"stop":     true,
	"offset":   true,
	"limit":    true,
	"pageSize": true,
}

var snakePart = regexp.MustCompile(`_([a-z])`)

// normalizeName turns page_size_max into pageSizeMax. Names without an
// underscore past the first byte are returned as-is.
func normalizeName(name string) string {
	if strings.Index(name, "_") <= 0 {
		return name
	}
	return snakePart.ReplaceAllStringFunc(strings.ToLower(name), func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

func canonicalName(name string) string {
	name = normalizeName(name)
	if alias, ok := optionAliases[name]; ok {
		return alias
	}
	return name
}

// Configure sets a single option by name. Names may be camelCase or snake_case.
// Integer options take the absolute value of whatever cast can coerce; boolean
// options accept anything cast.ToBoolE does.
func (p *Pager) Configure(name string, value any) error {
	key := canonicalName(name)
	if forbiddenOptions[key] {
		return fmt.Errorf("pager.Pager.Configure: %q: %w", name, ErrForbiddenOption)
	}

	switch key {
	case "startKey", "stopKey", "linksClassName", "argSep":
		s, err := cast.ToStringE(value)
		if err != nil {
			return fmt.Errorf("pager.Pager.Configure: %q: %w", name, err)
		}
		p.setString(key, s)
	case "pageSizeMax", "pageSizeDefault", "linksLimit", "totalRecords", "totalPages":
		n, err := cast.ToIntE(value)
		if err != nil {
			return fmt.Errorf("pager.Pager.Configure: %q: %w", name, err)
		}
		p.setInt(key, abs(n))
	case "autorun", "numerateFirstLast":
		b, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("pager.Pager.Configure: %q: %w", name, err)
		}
		if key == "autorun" {
			p.opts.Autorun = b
		} else {
			p.opts.NumerateFirstLast = b
		}
	case "linksTemplate":
		m, err := cast.ToStringMapStringE(value)
		if err != nil {
			return fmt.Errorf("pager.Pager.Configure: %q: %w", name, err)
		}
		p.setTemplate(m)
	default:
		return fmt.Errorf("pager.Pager.Configure: %q: %w", name, ErrUnknownOption)
	}

	p.invalidate()
	return nil
}

func (p *Pager) setString(key, s string) {
	switch key {
	case "startKey":
		p.opts.StartKey = s
	case "stopKey":
		p.opts.StopKey = s
	case "linksClassName":
		p.opts.LinksClassName = s
	case "argSep":
		if s == "" {
			s = "&"
		}
		p.opts.ArgSep = s
	}
}

func (p *Pager) setInt(key string, n int) {
	switch key {
	case "pageSizeMax":
		p.opts.PageSizeMax = n
		p.clampPageSizes()
	case "pageSizeDefault":
		p.opts.PageSizeDefault = n
		p.clampPageSizes()
	case "linksLimit":
		p.opts.LinksLimit = n
	case "totalRecords":
		p.totalRecords = n
		p.hasTotalRecords = true
	case "totalPages":
		p.totalPages = n
	}
}

// clampPageSizes keeps the default and any preset page size within the max.
func (p *Pager) clampPageSizes() {
	if p.opts.PageSizeMax > 0 {
		p.opts.PageSizeDefault = min(p.opts.PageSizeDefault, p.opts.PageSizeMax)
		p.stop = min(p.stop, p.opts.PageSizeMax)
	}
}

func (p *Pager) setTemplate(m map[string]string) {
	for k, v := range m {
		switch strings.ToLower(k) {
		case "page":
			p.opts.Template.Page = v
		case "first":
			p.opts.Template.First = v
		case "prev":
			p.opts.Template.Prev = v
		case "next":
			p.opts.Template.Next = v
		case "last":
			p.opts.Template.Last = v
		}
	}
}

// Get reads an option or derived value by name. Besides the option names
// accepted by Configure it understands offset, limit and pageSize.
func (p *Pager) Get(name string) (any, error) {
	switch key := canonicalName(name); key {
	case "offset", "start":
		return p.start, nil
	case "limit", "stop", "pageSize":
		return p.stop, nil
	case "startKey":
		return p.opts.StartKey, nil
	case "stopKey":
		return p.opts.StopKey, nil
	case "pageSizeMax":
		return p.opts.PageSizeMax, nil
	case "pageSizeDefault":
		return p.opts.PageSizeDefault, nil
	case "linksLimit":
		return p.opts.LinksLimit, nil
	case "linksClassName":
		return p.opts.LinksClassName, nil
	case "linksTemplate":
		return p.opts.Template, nil
	case "autorun":
		return p.opts.Autorun, nil
	case "numerateFirstLast":
		return p.opts.NumerateFirstLast, nil
	case "argSep":
		return p.opts.ArgSep, nil
	case "totalRecords":
		return p.totalRecords, nil
	case "totalPages":
		return p.totalPages, nil
	default:
		return nil, fmt.Errorf("pager.Pager.Get: %q: %w", name, ErrUnknownOption)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
