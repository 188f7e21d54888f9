package middleware

import (
	"context"
	"net/http"

	"github.com/pkordes/rv-pager/internal/pager"
)

type pagerCtxKey struct{}

// NewPaging returns a middleware that gives every request its own Pager built
// from opts. Handlers fetch it with PagerFromContext, then Run it once they
// know the record count.
func NewPaging(opts pager.Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithPager(r.Context(), pager.New(opts))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPager returns a copy of ctx carrying p.
func WithPager(ctx context.Context, p *pager.Pager) context.Context {
	return context.WithValue(ctx, pagerCtxKey{}, p)
}

// PagerFromContext returns the request's Pager, if NewPaging ran.
func PagerFromContext(ctx context.Context) (*pager.Pager, bool) {
	p, ok := ctx.Value(pagerCtxKey{}).(*pager.Pager)
	return p, ok
}
