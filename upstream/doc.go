// Package upstream holds the fetch behaviour of every variant the proxy
// forwards to: Nominatim address search, Street View imagery and the
// PlanningAlerts application search.
//
// Each fetcher issues exactly one GET through a shared Client and hands the
// body back as the text the router relays.
package upstream
