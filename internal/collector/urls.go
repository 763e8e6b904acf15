package collector

import "net/url"

// BuildPositionsURL appends the API key and the bus vehicle-type selector to
// the configured open-data endpoint
func BuildPositionsURL(base, apiKey string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("apikey", apiKey)
	q.Set("type", "1") // buses; trams are type 2
	u.RawQuery = q.Encode()
	return u.String()
}
