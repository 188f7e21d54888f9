package pager

import (
	"fmt"
	"strconv"
)

// Kind says what a navigation link points at.
type Kind int

const (
	KindFirst Kind = iota + 1
	KindPrev
	KindPage
	KindCurrent
	KindNext
	KindLast
)

var kindNames = map[Kind]string{
	KindFirst:   "first",
	KindPrev:    "prev",
	KindPage:    "page",
	KindCurrent: "current",
	KindNext:    "next",
	KindLast:    "last",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText lets links be encoded to JSON with readable kinds.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("pager: unknown link kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// Rel is the link relation rendered on an anchor.
type Rel string

const (
	RelNone  Rel = ""
	RelFirst Rel = "first"
	RelPrev  Rel = "prev"
	RelNext  Rel = "next"
	RelLast  Rel = "last"
)

// Link is one entry of a navigation bar.
type Link struct {
	Kind  Kind   `json:"kind"`
	Page  int    `json:"page"`
	Label string `json:"label"`
	Rel   Rel    `json:"rel,omitempty"`
}

// PlanInput is the paging state a plan is computed from.
type PlanInput struct {
	Offset            int
	PageSize          int
	TotalPages        int
	LinksLimit        int
	NumerateFirstLast bool
	Template          Template
}

func currentPage(offset, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return max(1, offset/pageSize+1)
}

// Plan lays out the full navigation bar: first and prev links unless on the
// first page, a window of at most LinksLimit numbered pages around the current
// one, and next and last links unless on the last page.
//
// Near the end the window is re-anchored so that it ends exactly at the last
// page and still holds LinksLimit pages.
func Plan(in PlanInput) ([]Link, error) {
	if in.TotalPages < 1 {
		return nil, ErrNotReady
	}
	if in.TotalPages == 1 {
		return []Link{{Kind: KindCurrent, Page: 1, Label: "1"}}, nil
	}

	total := in.TotalPages
	cur := currentPage(in.Offset, in.PageSize)
	limit := min(max(in.LinksLimit, 1), total)
	from, to := window(cur, limit)

	links := make([]Link, 0, limit+4)
	if cur > 1 {
		links = append(links, in.first(), in.prev(cur))
	}

	if to > total {
		// tail window: j..total, always limit pages wide
		j := cur
		if extra := total - cur; extra < limit-1 {
			j -= (limit - 1) - extra
		}
		for ; j <= total; j++ {
			if j == cur {
				links = append(links, current(j))
				continue
			}
			links = append(links, Link{Kind: KindPage, Page: j, Label: strconv.Itoa(j), Rel: RelNext})
		}
	} else {
		for i := from; i < to; i++ {
			switch i {
			case cur:
				links = append(links, current(i))
			case cur - 1:
				links = append(links, Link{Kind: KindPage, Page: i, Label: strconv.Itoa(i), Rel: RelPrev})
			case cur + 1:
				links = append(links, Link{Kind: KindPage, Page: i, Label: strconv.Itoa(i), Rel: RelNext})
			default:
				links = append(links, Link{Kind: KindPage, Page: i, Label: strconv.Itoa(i)})
			}
		}
	}

	if cur != total {
		links = append(links, in.next(cur), in.last(total))
	}
	return links, nil
}

// window returns the numbered range [from, to) centered on cur.
// to may run past the last page; Plan then switches to the tail window.
func window(cur, limit int) (from, to int) {
	middle := (limit + 1) / 2
	if cur >= middle {
		return cur - (middle - 1), cur + limit - (middle - 1)
	}

	to = cur + limit
	if cur == middle-1 {
		to--
	}
	// never wider than limit pages starting at 1
	if to >= limit {
		to = limit + 1
	}
	return 1, to
}

// PlanCentered lays out the compact bar: first and prev links, a single
// "Page N" entry, then next and last links.
func PlanCentered(in PlanInput) ([]Link, error) {
	if in.TotalPages < 1 {
		return nil, ErrNotReady
	}
	if in.TotalPages == 1 {
		return []Link{{Kind: KindCurrent, Page: 1, Label: "1"}}, nil
	}

	total := in.TotalPages
	cur := currentPage(in.Offset, in.PageSize)

	links := make([]Link, 0, 5)
	if cur > 1 {
		links = append(links, in.first(), in.prev(cur))
	}
	links = append(links, Link{
		Kind:  KindCurrent,
		Page:  cur,
		Label: fmt.Sprintf("%s %d", in.Template.Page, cur),
	})
	if cur < total {
		links = append(links, in.next(cur), in.last(total))
	}
	return links, nil
}

func current(page int) Link {
	return Link{Kind: KindCurrent, Page: page, Label: strconv.Itoa(page)}
}

func (in PlanInput) first() Link {
	label := in.Template.First
	if in.NumerateFirstLast {
		label = "1"
	}
	return Link{Kind: KindFirst, Page: 1, Label: label, Rel: RelFirst}
}

func (in PlanInput) prev(cur int) Link {
	return Link{Kind: KindPrev, Page: cur - 1, Label: in.Template.Prev, Rel: RelPrev}
}

func (in PlanInput) next(cur int) Link {
	return Link{Kind: KindNext, Page: cur + 1, Label: in.Template.Next, Rel: RelNext}
}

func (in PlanInput) last(total int) Link {
	label := in.Template.Last
	if in.NumerateFirstLast {
		label = strconv.Itoa(total)
	}
	return Link{Kind: KindLast, Page: total, Label: label, Rel: RelLast}
}
