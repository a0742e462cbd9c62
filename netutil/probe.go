package netutil

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// LookupHostFunc resolves a hostname into addresses
type LookupHostFunc func(ctx context.Context, host string) ([]string, error)

// PortChecker probes local port availability and remote port reachability
type PortChecker struct {
	logger     zerolog.Logger
	lookupHost LookupHostFunc
}

// NewPortChecker creates a port checker with the default resolver
func NewPortChecker(logger zerolog.Logger) *PortChecker {
	return &PortChecker{
		logger:     logger.With().Str("component", "port_checker").Logger(),
		lookupHost: net.DefaultResolver.LookupHost,
	}
}

// WithLookupHost swaps the host resolver, used to substitute resolution in
// tests
func (pc *PortChecker) WithLookupHost(fn LookupHostFunc) *PortChecker {
	pc.lookupHost = fn
	return pc
}

// IsPortAvailable reports whether the local port can be bound for both TCP
// and UDP. A port already held by anyone, this process included, is
// reported unavailable.
func (pc *PortChecker) IsPortAvailable(port int) bool {
	if port < 1 || port > 65535 {
		return false
	}

	addr := net.JoinHostPort("", strconv.Itoa(port))

	tcpListener, err := net.Listen("tcp", addr)
	if err != nil {
		pc.logger.Debug().Int("port", port).Err(err).Msg("TCP bind failed")
		return false
	}
	defer func() { _ = tcpListener.Close() }()

	udpConn, err := net.ListenPacket("udp", addr)
	if err != nil {
		pc.logger.Debug().Int("port", port).Err(err).Msg("UDP bind failed")
		return false
	}
	defer func() { _ = udpConn.Close() }()

	return true
}

// CheckRemotePort attempts a TCP connection to the host and port, blocking
// for at most the given timeout. The hostname is resolved through the
// checker's resolver first so resolution failures surface distinctly.
func (pc *PortChecker) CheckRemotePort(ctx context.Context, hostPort HostPort, timeout time.Duration) error {
	if timeout <= 0 {
		return errorwrapper.NewValidationError("timeout", timeout, "must be positive")
	}

	resolveCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addrs, err := pc.lookupHost(resolveCtx, hostPort.Host)
	if err != nil {
		return errorwrapper.NewNetworkError(hostPort.String(), "host resolution failed", err)
	}
	if len(addrs) == 0 {
		return errorwrapper.NewNetworkError(hostPort.String(), "host resolved to no addresses", nil)
	}

	dialer := net.Dialer{Timeout: timeout}
	target := net.JoinHostPort(addrs[0], strconv.Itoa(hostPort.Port))

	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		return errorwrapper.NewNetworkError(hostPort.String(), "connection failed", err)
	}
	_ = conn.Close()

	pc.logger.Debug().Str("address", hostPort.String()).Msg("remote port reachable")
	return nil
}

// defaultChecker backs the package-level convenience functions
var defaultChecker = NewPortChecker(zerolog.Nop())

// IsPortAvailable probes the local port with the default checker
func IsPortAvailable(port int) bool {
	return defaultChecker.IsPortAvailable(port)
}

// CheckRemotePort probes the remote port with the default checker
func CheckRemotePort(ctx context.Context, hostPort HostPort, timeout time.Duration) error {
	return defaultChecker.CheckRemotePort(ctx, hostPort, timeout)
}
