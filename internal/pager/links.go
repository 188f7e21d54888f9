package pager

import (
	"fmt"
	"strconv"
)

type linkConfig struct {
	limit     int
	ignored   []string
	className string
	pageWord  *string
}

// LinkOption adjusts a single Links or LinksCenter call.
type LinkOption func(*linkConfig)

// WithLinksLimit overrides the configured number of numbered links.
func WithLinksLimit(n int) LinkOption {
	return func(c *linkConfig) { c.limit = abs(n) }
}

// WithIgnoredKeys drops extra query keys from generated hrefs.
func WithIgnoredKeys(keys ...string) LinkOption {
	return func(c *linkConfig) { c.ignored = append(c.ignored, keys...) }
}

// WithClassName overrides the configured <ul> class.
func WithClassName(name string) LinkOption {
	return func(c *linkConfig) { c.className = name }
}

// WithPageWord overrides the "Page" word of the centered variant.
func WithPageWord(word string) LinkOption {
	return func(c *linkConfig) { c.pageWord = &word }
}

func (p *Pager) linkConfig(opts []LinkOption) linkConfig {
	c := linkConfig{limit: p.opts.LinksLimit, className: p.opts.LinksClassName}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// linkCache memoizes one plan until the state it was computed from changes.
type linkCache struct {
	valid bool
	key   string
	links []Link
}

func (c *linkCache) get(key string, plan func() ([]Link, error)) ([]Link, error) {
	if c.valid && c.key == key {
		return c.links, nil
	}
	links, err := plan()
	if err != nil {
		return nil, err
	}
	*c = linkCache{valid: true, key: key, links: links}
	return links, nil
}

func (p *Pager) invalidate() {
	p.links = linkCache{}
	p.linksCenter = linkCache{}
}

// Plan returns the cached full navigation plan, computing it on first use.
func (p *Pager) Plan(opts ...LinkOption) ([]Link, error) {
	c := p.linkConfig(opts)
	links, err := p.links.get(strconv.Itoa(c.limit), func() ([]Link, error) {
		return Plan(p.planInput(c.limit))
	})
	if err != nil {
		return nil, fmt.Errorf("pager.Pager.Plan: %w", err)
	}
	return links, nil
}

// PlanCentered returns the cached compact navigation plan.
func (p *Pager) PlanCentered(opts ...LinkOption) ([]Link, error) {
	c := p.linkConfig(opts)
	in := p.planInput(c.limit)
	if c.pageWord != nil {
		in.Template.Page = *c.pageWord
	}
	links, err := p.linksCenter.get(in.Template.Page, func() ([]Link, error) {
		return PlanCentered(in)
	})
	if err != nil {
		return nil, fmt.Errorf("pager.Pager.PlanCentered: %w", err)
	}
	return links, nil
}

// Links renders the full navigation bar as a <ul>.
func (p *Pager) Links(opts ...LinkOption) (string, error) {
	links, err := p.Plan(opts...)
	if err != nil {
		return "", err
	}
	c := p.linkConfig(opts)
	return Render(links, RenderOptions{ClassName: c.className, Href: p.hrefFunc(c.ignored)}), nil
}

// LinksCenter renders the compact navigation bar as a <ul class="... center">.
func (p *Pager) LinksCenter(opts ...LinkOption) (string, error) {
	links, err := p.PlanCentered(opts...)
	if err != nil {
		return "", err
	}
	c := p.linkConfig(opts)
	return Render(links, RenderOptions{ClassName: c.className, Center: true, Href: p.hrefFunc(c.ignored)}), nil
}

// Href returns the URL of page, built from the request passed to Run.
func (p *Pager) Href(page int, ignoredKeys ...string) string {
	return p.hrefFunc(ignoredKeys)(page)
}

func (p *Pager) hrefFunc(ignored []string) func(int) string {
	drop := append([]string{p.opts.StartKey}, ignored...)
	prefix := queryPrefix(p.req, p.opts.ArgSep, drop...)
	return func(page int) string {
		return prefix + p.opts.StartKey + "=" + strconv.Itoa(page)
	}
}
