package upstream

import (
	"net/url"

	"github.com/prognoshealth/geoproxy/proxy"
)

// required returns a 400 error naming the first of names missing in params.
func required(params map[string]string, names ...string) error {
	for _, name := range names {
		if params[name] == "" {
			return proxy.BadRequest("Missing Required Parameter %s", name)
		}
	}

	return nil
}

// valueOr returns params[name], or fallback when it is unset or empty.
func valueOr(params map[string]string, name, fallback string) string {
	return or(params[name], fallback)
}

// copyParams sets every entry of params on q, skipping the given names.
func copyParams(q url.Values, params map[string]string, skip ...string) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}

	for k, v := range params {
		if !skipped[k] {
			q.Set(k, v)
		}
	}
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
