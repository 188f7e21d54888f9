package pager

import (
	"net/url"
	"slices"
	"strings"
)

// keptPairs returns the raw key=value pairs of rawQuery whose key is not in
// drop. Pairs keep their original order and encoding.
func keptPairs(rawQuery string, drop []string) []string {
	var kept []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if key == "" || slices.Contains(drop, key) {
			continue
		}
		kept = append(kept, pair)
	}
	return kept
}

// queryPrefix returns the request path and its query without the dropped
// keys, ready to have one more key=value appended:
//
//	/trips?q=x&   or   /trips?
func queryPrefix(req Request, sep string, drop ...string) string {
	kept := keptPairs(strings.TrimSpace(req.RawQuery), drop)
	if len(kept) == 0 {
		return req.Path + "?"
	}
	return req.Path + "?" + strings.Join(kept, sep) + sep
}

// canonicalURL returns the request path and its query without the dropped
// keys. The "?" is omitted when nothing is left.
func canonicalURL(req Request, sep string, drop ...string) string {
	kept := keptPairs(strings.TrimSpace(req.RawQuery), drop)
	if len(kept) == 0 {
		return req.Path
	}
	return req.Path + "?" + strings.Join(kept, sep)
}
