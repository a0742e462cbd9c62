package urlutil

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// Best-effort URL shape: scheme://host:port/path?query#fragment.
// Not a full RFC 3986 parser.
var componentsRegex = regexp.MustCompile(
	`^(?:(?P<scheme>[a-zA-Z][a-zA-Z0-9+.-]*)://)?` +
		`(?P<host>\[[^\]]+\]|[^/:?#]+)?` +
		`(?::(?P<port>\d+))?` +
		`(?P<path>/[^?#]*)?` +
		`(?:\?(?P<query>[^#]*))?` +
		`(?:#(?P<fragment>.*))?$`)

// Components holds the pieces of a URL extracted by Extract
type Components struct {
	Scheme   string
	Host     string
	Port     int
	Path     string
	RawQuery string
	Fragment string
}

// Default ports for schemes the extractor knows about
var schemeDefaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"ftp":   21,
}

// Extract splits a URL string into its components using a single regex
// pass. When the port is absent it is defaulted from the scheme where
// known, otherwise left 0.
func Extract(rawURL string) (Components, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return Components{}, errorwrapper.NewValidationError("url", rawURL, "must not be blank")
	}

	match := componentsRegex.FindStringSubmatch(trimmed)
	if match == nil {
		return Components{}, errorwrapper.NewError("could not extract components from URL '%s'", trimmed)
	}

	groups := make(map[string]string, len(match))
	for i, name := range componentsRegex.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	components := Components{
		Scheme:   strings.ToLower(groups["scheme"]),
		Host:     strings.ToLower(groups["host"]),
		Path:     groups["path"],
		RawQuery: groups["query"],
		Fragment: groups["fragment"],
	}

	if portStr := groups["port"]; portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Components{}, errorwrapper.WrapError(err, "invalid port in URL '"+trimmed+"'")
		}
		if port < 1 || port > 65535 {
			return Components{}, errorwrapper.NewValidationError("port", port, "must be between 1 and 65535")
		}
		components.Port = port
	} else if defaultPort, ok := schemeDefaultPorts[components.Scheme]; ok {
		components.Port = defaultPort
	}

	return components, nil
}

// String reassembles the components into a URL string
func (c Components) String() string {
	var sb strings.Builder
	if c.Scheme != "" {
		sb.WriteString(c.Scheme)
		sb.WriteString("://")
	}
	sb.WriteString(c.Host)
	if c.Port != 0 && c.Port != schemeDefaultPorts[c.Scheme] {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(c.Port))
	}
	sb.WriteString(c.Path)
	if c.RawQuery != "" {
		sb.WriteString("?")
		sb.WriteString(c.RawQuery)
	}
	if c.Fragment != "" {
		sb.WriteString("#")
		sb.WriteString(c.Fragment)
	}
	return sb.String()
}
