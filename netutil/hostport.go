// Package netutil provides CIDR range arithmetic, host:port parsing, and
// local/remote port probing.
package netutil

import (
	"net"
	"strconv"
	"strings"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// HostPort is an immutable host (name or IP) and port pair
type HostPort struct {
	Host string
	Port int
}

// NewHostPort validates and builds a HostPort
func NewHostPort(host string, port int) (HostPort, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return HostPort{}, errorwrapper.NewValidationError("host", host, "must not be blank")
	}
	if port < 1 || port > 65535 {
		return HostPort{}, errorwrapper.NewValidationError("port", port, "must be between 1 and 65535")
	}
	return HostPort{Host: host, Port: port}, nil
}

// ParseHostPort parses "host:port" (or "[v6]:port") into a HostPort
func ParseHostPort(s string) (HostPort, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return HostPort{}, errorwrapper.NewValidationError("address", s, "must not be blank")
	}

	host, portStr, err := net.SplitHostPort(trimmed)
	if err != nil {
		return HostPort{}, errorwrapper.WrapError(err, "could not parse address '"+trimmed+"'")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return HostPort{}, errorwrapper.WrapError(err, "invalid port in address '"+trimmed+"'")
	}

	return NewHostPort(host, port)
}

// String rejoins the pair, bracketing IPv6 hosts
func (hp HostPort) String() string {
	return net.JoinHostPort(hp.Host, strconv.Itoa(hp.Port))
}
