// Package pager turns page-index / page-size request parameters into an
// offset and limit, and renders the first/prev/numbered/next/last navigation
// links for a paged result set.
//
// A Pager is built once per request, configured, and then Run exactly once.
// Links and LinksCenter may be called any number of times afterwards; their
// plans are cached on the instance. A Pager is not safe for concurrent use.
package pager

import (
	"fmt"
	"maps"
	"math"
	"net/url"
	"slices"
	"strconv"
)

// Request is the part of an HTTP request the pager reads: the path for
// building links, and the raw query holding the paging parameters.
type Request struct {
	Path     string
	RawQuery string
}

// RequestFromURL extracts a Request from u.
func RequestFromURL(u *url.URL) Request {
	return Request{Path: u.Path, RawQuery: u.RawQuery}
}

// Window is the result of Run, ready for a LIMIT/OFFSET query.
type Window struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Pager holds the paging configuration and the state derived by Run.
type Pager struct {
	opts Options

	// start and stop hold the raw page index and page size until Run,
	// and the derived offset and page size afterwards.
	start int
	stop  int

	totalRecords    int
	hasTotalRecords bool
	totalPages      int

	req Request

	links       linkCache
	linksCenter linkCache
}

// New returns a Pager using opts.
func New(opts Options) *Pager {
	if opts.ArgSep == "" {
		opts.ArgSep = "&"
	}
	p := &Pager{opts: opts}
	p.clampPageSizes()
	return p
}

// FromProperties returns a Pager with DefaultOptions, then applies each
// property through Configure in key order.
func FromProperties(props map[string]any) (*Pager, error) {
	p := New(DefaultOptions())
	for _, name := range slices.Sorted(maps.Keys(props)) {
		if err := p.Configure(name, props[name]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Options returns a copy of the current configuration.
func (p *Pager) Options() Options { return p.opts }

// Preset sets the page index and page size used by Run when Autorun is off.
// The page size is clamped to PageSizeMax.
func (p *Pager) Preset(page, pageSize int) {
	p.start = abs(page)
	p.stop = abs(pageSize)
	p.clampPageSizes()
	p.invalidate()
}

type runConfig struct {
	total    *int
	limit    *int
	startKey string
	stopKey  string
}

// RunOption adjusts a single Run call.
type RunOption func(*runConfig)

// WithTotal sets the total record count. Negative values are taken as absolute.
func WithTotal(n int) RunOption {
	return func(c *runConfig) { c.total = &n }
}

// WithLimit fixes the page size, ignoring the request's page size parameter.
func WithLimit(n int) RunOption {
	return func(c *runConfig) { c.limit = &n }
}

// WithKeys overrides the page index and page size parameter names.
// Empty names leave the configured key in place.
func WithKeys(startKey, stopKey string) RunOption {
	return func(c *runConfig) {
		c.startKey = startKey
		c.stopKey = stopKey
	}
}

// Run derives offset, page size and total pages from req.
//
// A non-nil *Redirect means the request parameters were malformed or out of
// range; the caller must issue the redirect and stop handling the request.
func (p *Pager) Run(req Request, opts ...RunOption) (Window, *Redirect) {
	var rc runConfig
	for _, o := range opts {
		o(&rc)
	}

	if rc.total != nil {
		p.totalRecords = abs(*rc.total)
		p.hasTotalRecords = true
	}
	if rc.startKey != "" {
		p.opts.StartKey = rc.startKey
	}
	if rc.stopKey != "" {
		p.opts.StopKey = rc.stopKey
	}
	p.req = req

	params, _ := url.ParseQuery(req.RawQuery)
	start := lookup(params, p.opts.StartKey)
	var stop Param
	if rc.limit != nil {
		stop = Param{Value: strconv.Itoa(*rc.limit)}
	} else {
		stop = lookup(params, p.opts.StopKey)
	}

	if p.opts.Autorun {
		p.start = abs(atoi(start.Value))
		p.stop = abs(atoi(stop.Value))
	}

	size := p.stop
	if size <= 0 {
		size = p.opts.PageSizeDefault
	}
	if size <= 0 {
		size = 1
	}
	if p.opts.PageSizeMax > 0 && size > p.opts.PageSizeMax {
		size = p.opts.PageSizeMax
	}

	offset := 0
	if p.start > 1 {
		offset = p.start*size - size
	}
	p.stop = size
	p.start = offset

	p.totalPages = 1
	if p.totalRecords > 0 {
		p.totalPages = int(math.Ceil(float64(p.totalRecords) / float64(size)))
	}
	p.invalidate()

	if redirect := Validate(ValidateInput{
		Request:     req,
		StartKey:    p.opts.StartKey,
		StopKey:     p.opts.StopKey,
		ArgSep:      p.opts.ArgSep,
		Start:       start,
		Stop:        stop,
		TotalPages:  p.totalPages,
		PageSizeMax: p.opts.PageSizeMax,
	}); redirect != nil {
		return p.Window(), redirect
	}

	if p.hasTotalRecords && p.totalRecords == 1 {
		p.stop = 1
		p.start = 0
	}

	return p.Window(), nil
}

// Window returns the current limit and offset.
func (p *Pager) Window() Window {
	return Window{Limit: p.stop, Offset: p.start}
}

// Offset returns the zero-based record offset.
func (p *Pager) Offset() int { return p.start }

// Limit returns the page size.
func (p *Pager) Limit() int { return p.stop }

// TotalRecords returns the record count given to Run or Configure.
func (p *Pager) TotalRecords() int { return p.totalRecords }

// TotalPages returns the page count and whether it is known yet.
func (p *Pager) TotalPages() (int, bool) {
	return p.totalPages, p.totalPages > 0
}

// CurrentPage returns the 1-based page matching the current offset.
func (p *Pager) CurrentPage() int {
	return currentPage(p.start, p.stop)
}

func (p *Pager) planInput(linksLimit int) PlanInput {
	return PlanInput{
		Offset:            p.start,
		PageSize:          p.stop,
		TotalPages:        p.totalPages,
		LinksLimit:        linksLimit,
		NumerateFirstLast: p.opts.NumerateFirstLast,
		Template:          p.opts.Template,
	}
}

// String is meant for logs.
func (p *Pager) String() string {
	return fmt.Sprintf("pager(offset=%d limit=%d pages=%d records=%d)",
		p.start, p.stop, p.totalPages, p.totalRecords)
}

// lookup returns the first value of key, noting whether it was present at all.
func lookup(params url.Values, key string) Param {
	vs, ok := params[key]
	if !ok || len(vs) == 0 {
		return Param{}
	}
	return Param{Value: vs[0], Present: true}
}

// atoi parses s leniently: anything that is not a plain integer is zero.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
