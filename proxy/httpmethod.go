package proxy

import "strings"

// HttpMethod is an enum of the standard Http Methods.
type HttpMethod int

const (
	GET HttpMethod = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var httpMethodNames = [...]string{"GET", "HEAD", "POST", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

func (m HttpMethod) String() string {
	if m < 0 || int(m) >= len(httpMethodNames) {
		return "UNKNOWN"
	}

	return httpMethodNames[m]
}

// ParseHttpMethod returns the HttpMethod matching name, ignoring case. The
// second value is false when name is not a standard method.
func ParseHttpMethod(name string) (HttpMethod, bool) {
	for i, n := range httpMethodNames {
		if strings.EqualFold(n, name) {
			return HttpMethod(i), true
		}
	}

	return GET, false
}
