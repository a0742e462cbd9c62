package urlutil

import (
	"net/url"
	"sort"
	"strings"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// QueryToMap decodes a query string ("a=1&b=2") into a map. Percent
// encoding is decoded; the last value wins for repeated keys. A leading
// "?" is tolerated.
func QueryToMap(queryString string) (map[string]string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(queryString), "?")
	if trimmed == "" {
		return map[string]string{}, nil
	}

	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "could not parse query string '"+queryString+"'")
	}

	result := make(map[string]string, len(values))
	for key, vals := range values {
		result[key] = vals[len(vals)-1]
	}
	return result, nil
}

// ToQueryString encodes the map as a query string with percent encoding
// applied and keys in sorted order, so output is deterministic
func ToQueryString(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(params[k]))
	}
	return sb.String()
}

// AppendQuery adds the given parameters to the URL's query string,
// overwriting existing values for the same keys
func AppendQuery(rawURL string, params map[string]string) (string, error) {
	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", errorwrapper.WrapError(err, "could not parse URL '"+rawURL+"'")
	}

	query := parsedURL.Query()
	for k, v := range params {
		query.Set(k, v)
	}
	parsedURL.RawQuery = query.Encode()

	return parsedURL.String(), nil
}
