package proxy

// Variant identifies one of the upstream apis the router can forward to. The
// value is what callers send in the apiKey query parameter.
type Variant string

const (
	AddressSearch  Variant = "ADDRESS_SEARCH"
	OpenPlanning   Variant = "OPEN_PLANNING"
	OpenStreetView Variant = "OPEN_STREET_VIEW"
)

// Variants returns every known variant. A Registry must hold a route for each
// of them.
func Variants() []Variant {
	return []Variant{AddressSearch, OpenPlanning, OpenStreetView}
}

// ParseVariant returns the Variant named by apiKey or a NotFound error when
// apiKey is empty or unknown.
func ParseVariant(apiKey string) (Variant, error) {
	switch v := Variant(apiKey); v {
	case AddressSearch, OpenPlanning, OpenStreetView:
		return v, nil
	default:
		return "", NotFound(apiKey)
	}
}

func (v Variant) String() string {
	return string(v)
}
