package config

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Environment keys.
const (
	KeyAuthToken         = "auth_token"
	KeyStreetViewAPIKey  = "street_view_api_key"
	KeyOpenPlanningToken = "open_planning_api_token"
	KeyCORSOrigin        = "cors_origin"
	KeyNominatimURL      = "nominatim_url"
	KeyStreetViewURL     = "street_view_url"
	KeyOpenPlanningURL   = "open_planning_url"
	KeyUserAgent         = "user_agent"
	KeyDebug             = "debug"
	KeyLocal             = "local"
	KeyLocalAddress      = "local_address"
	KeyRegion            = "aws_region"
)

// SSMPrefix marks a value that names an SSM parameter instead of holding the
// secret itself.
const SSMPrefix = "ssm:"

// Config holds every setting of the proxy. It is built once and never
// modified afterwards.
type Config struct {
	AuthToken            string
	StreetViewAPIKey     string
	OpenPlanningAPIToken string
	CORSOrigin           string

	NominatimURL    string
	StreetViewURL   string
	OpenPlanningURL string
	UserAgent       string

	Debug        bool
	Local        bool
	LocalAddress string
	Region       string
}

// Resolver looks up the secret stored under name.
type Resolver interface {
	Resolve(name string) (string, error)
}

// NewViper returns a viper instance reading the environment, with the
// defaults of every optional key set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyCORSOrigin, "*")
	v.SetDefault(KeyNominatimURL, "https://nominatim.openstreetmap.org")
	v.SetDefault(KeyStreetViewURL, "https://maps.googleapis.com/maps/api/streetview")
	v.SetDefault(KeyOpenPlanningURL, "https://api.planningalerts.org.au/applications.js")
	v.SetDefault(KeyUserAgent, "geoproxy/1.0")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLocal, false)
	v.SetDefault(KeyLocalAddress, ":3000")
	v.SetDefault(KeyRegion, "ap-southeast-2")

	return v
}

// Load reads the configuration from the environment, resolving ssm: values
// through the parameter store of the configured region.
func Load() (*Config, error) {
	v := NewViper()
	return FromViper(v, NewSSMResolver(v.GetString(KeyRegion)))
}

// FromViper builds and validates a Config from v. resolver may be nil when no
// value uses the ssm: prefix.
func FromViper(v *viper.Viper, resolver Resolver) (*Config, error) {
	cfg := &Config{
		CORSOrigin:      v.GetString(KeyCORSOrigin),
		NominatimURL:    v.GetString(KeyNominatimURL),
		StreetViewURL:   v.GetString(KeyStreetViewURL),
		OpenPlanningURL: v.GetString(KeyOpenPlanningURL),
		UserAgent:       v.GetString(KeyUserAgent),
		Debug:           v.GetBool(KeyDebug),
		Local:           v.GetBool(KeyLocal),
		LocalAddress:    v.GetString(KeyLocalAddress),
		Region:          v.GetString(KeyRegion),
	}

	secrets := []struct {
		key string
		dst *string
	}{
		{KeyAuthToken, &cfg.AuthToken},
		{KeyStreetViewAPIKey, &cfg.StreetViewAPIKey},
		{KeyOpenPlanningToken, &cfg.OpenPlanningAPIToken},
	}

	for _, s := range secrets {
		value, err := resolve(v.GetString(s.key), resolver)
		if err != nil {
			return nil, errors.Wrapf(err, "failed resolving %s", s.key)
		}
		*s.dst = value
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolve returns value, or the secret it points to when it has the ssm:
// prefix.
func resolve(value string, resolver Resolver) (string, error) {
	if !strings.HasPrefix(value, SSMPrefix) {
		return value, nil
	}

	if resolver == nil {
		return "", errors.New("no resolver for ssm parameter")
	}

	return resolver.Resolve(strings.TrimPrefix(value, SSMPrefix))
}

// Validate checks the settings the router cannot run without.
func (cfg *Config) Validate() error {
	if cfg.AuthToken == "" {
		return errors.New("auth token is required")
	}

	urls := map[string]string{
		KeyNominatimURL:    cfg.NominatimURL,
		KeyStreetViewURL:   cfg.StreetViewURL,
		KeyOpenPlanningURL: cfg.OpenPlanningURL,
	}

	for key, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", key)
		}

		if u.Scheme == "" || u.Host == "" {
			return errors.Errorf("invalid %s '%s': scheme and host are required", key, raw)
		}
	}

	return nil
}
