// Package normalize canonicalizes URLs and folder names for duplicate
// detection. Normalized forms are keys only; output always carries the
// original strings.
package normalize

import (
	"net/url"
	"strings"
)

// trackingParams are query keys that never change what a URL points at.
var trackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
	"utm_term":     {},
	"utm_content":  {},
	"utm_id":       {},
	"gclid":        {},
	"fbclid":       {},
	"mc_cid":       {},
	"mc_eid":       {},
	"igshid":       {},
	"ref":          {},
}

// URL returns the canonical form of raw, used as a deduplication key.
// Scheme and host are lowercased, trailing path slashes are stripped
// (except for the root path), tracking query parameters are removed,
// the fragment is dropped. On any parse failure raw is returned
// unchanged; normalization never fails.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	if u.Path != "/" && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimRight(u.Path, "/")
		u.RawPath = ""
	}

	u.RawQuery = filterQuery(u.RawQuery)
	u.Fragment = ""
	u.RawFragment = ""

	if out := u.String(); out != "" {
		return out
	}
	return raw
}

// filterQuery re-encodes a query string deterministically, dropping
// tracking parameters. Pair order, duplicate keys and blank values are
// preserved; url.Values cannot be used here because it loses order.
func filterQuery(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			key = k
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			val = v
		}
		if _, skip := trackingParams[key]; skip {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val))
	}
	return b.String()
}
