package store

import (
	"context"
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"github.com/uiseong-market/form-server/internal/shared/validator"
)

// locationRegex: "경상북도 의성군" + whitespace + text containing "면".
// Whitespace includes Unicode spaces such as U+3000 from full-width IME input.
var locationRegex = regexp.MustCompile(`^경상북도 의성군[\s\p{Z}].+면`)

// mapHosts are the accepted Google Maps hosts (substring match)
var mapHosts = []string{"google.com", "goo.gl"}

type Validator struct {
	engine *validator.Engine
}

func NewValidator(engine *validator.Engine) *Validator {
	return &Validator{engine: engine}
}

// Validate checks form in a fixed order and stops at the first failure:
// 1. required fields, introduce length, URL format
// 2. location format
// 3. Google Maps host
func (v *Validator) Validate(ctx context.Context, form *Form) (Record, error) {
	if err := v.engine.Struct(ctx, form); err != nil {
		return Record{}, err
	}

	err := validator.Evaluate(ctx,
		validator.Rule{Field: "location", Check: validator.Match(locationRegex, form.Location), Err: ErrInvalidLocation},
		validator.Rule{Field: "google_map_url", Check: validator.HostContains(form.GoogleMapURL, mapHosts...), Err: ErrInvalidMapURL},
	)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:         form.Name,
		Introduce:    form.Introduce,
		Location:     form.Location,
		GoogleMapURL: canonicalURL(form.GoogleMapURL),
		Product:      form.Product,
	}, nil
}

// canonicalURL lower-cases scheme and host and uses "/" for an empty path.
// Internationalized hosts are stored in their punycode form.
func canonicalURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = canonicalHost(u)
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// canonicalHost: 구글.google.com -> xn--2e0b0k.google.com
func canonicalHost(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}

	if port := u.Port(); port != "" {
		return net.JoinHostPort(host, port)
	}
	if strings.Contains(host, ":") {
		return "[" + host + "]" // IPv6 literal
	}
	return host
}
