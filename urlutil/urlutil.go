// Package urlutil provides best-effort URL component extraction, a
// query-string codec, and URL normalization helpers.
package urlutil

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// Regex for cleaning filenames
var (
	unsafeFilenameCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)
	multipleUnderscoresRegex = regexp.MustCompile(`_+`)
)

// Normalize normalizes a URL by adding a https scheme if missing and
// lowercasing the host
func Normalize(rawURL string) (string, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return "", errorwrapper.NewValidationError("url", rawURL, "must not be blank")
	}

	if !strings.HasPrefix(trimmedURL, "http://") && !strings.HasPrefix(trimmedURL, "https://") {
		trimmedURL = "https://" + trimmedURL
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return "", errorwrapper.WrapError(err, "could not parse URL '"+trimmedURL+"'")
	}

	parsedURL.Host = strings.ToLower(parsedURL.Host)

	return parsedURL.String(), nil
}

// ExtractHostname extracts the hostname without port from a URL string
func ExtractHostname(urlString string) (string, error) {
	if strings.TrimSpace(urlString) == "" {
		return "", errorwrapper.NewValidationError("url", urlString, "must not be blank")
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return "", errorwrapper.WrapError(err, "could not parse URL '"+urlString+"'")
	}

	hostname := parsedURL.Hostname()
	if hostname == "" {
		return "", errorwrapper.NewError("URL has no hostname component: %s", urlString)
	}

	return hostname, nil
}

// BaseDomain extracts the registrable domain ("example.com" from
// "sub.example.com", "example.co.uk" from "www.example.co.uk") using the
// public suffix list. A bare suffix or single label is returned as is.
func BaseDomain(hostname string) (string, error) {
	hostname = strings.ToLower(strings.TrimSpace(hostname))
	if hostname == "" {
		return "", errorwrapper.NewValidationError("hostname", hostname, "must not be blank")
	}

	// Remove port if present
	if strings.Contains(hostname, ":") {
		if host, _, err := net.SplitHostPort(hostname); err == nil {
			hostname = host
		}
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		// Single labels and bare public suffixes have no eTLD+1
		return hostname, nil
	}
	return domain, nil
}

// SanitizeFilename creates a safe filename string from a URL or any input
// string. It removes the scheme, replaces unsafe characters with
// underscores, and cleans up the result.
func SanitizeFilename(input string) string {
	name := input
	if i := strings.Index(name, "://"); i != -1 {
		name = name[i+3:]
	}

	name = unsafeFilenameCharsRegex.ReplaceAllString(name, "_")
	name = multipleUnderscoresRegex.ReplaceAllString(name, "_")

	name = strings.ReplaceAll(name, "..", "_")
	name = strings.ReplaceAll(name, "_.", "_")
	name = strings.ReplaceAll(name, "._", "_")
	name = strings.Trim(name, "_.")

	if name == "" {
		return "sanitized_empty_input"
	}

	return name
}
