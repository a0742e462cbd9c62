package netutil

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/aleister1102/toolbox/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPortAvailable_HeldPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	port := listener.Addr().(*net.TCPAddr).Port

	checker := NewPortChecker(zerolog.Nop())
	assert.False(t, checker.IsPortAvailable(port), "port held by the test itself must be reported unavailable")
}

func TestIsPortAvailable_FreePort(t *testing.T) {
	// Grab a free port number, then release it before probing
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	checker := NewPortChecker(zerolog.Nop())
	assert.True(t, checker.IsPortAvailable(port))
}

func TestIsPortAvailable_InvalidPort(t *testing.T) {
	checker := NewPortChecker(zerolog.Nop())
	assert.False(t, checker.IsPortAvailable(0))
	assert.False(t, checker.IsPortAvailable(-1))
	assert.False(t, checker.IsPortAvailable(70000))
}

func TestCheckRemotePort_Reachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	port := listener.Addr().(*net.TCPAddr).Port
	hostPort, err := NewHostPort("localhost", port)
	require.NoError(t, err)

	// Substitute resolution so the test does not depend on the system
	// resolver's handling of localhost
	checker := NewPortChecker(zerolog.Nop()).WithLookupHost(
		func(ctx context.Context, host string) ([]string, error) {
			assert.Equal(t, "localhost", host)
			return []string{"127.0.0.1"}, nil
		})

	err = checker.CheckRemotePort(context.Background(), hostPort, 2*time.Second)
	assert.NoError(t, err)
}

func TestCheckRemotePort_Refused(t *testing.T) {
	// Find a port with nothing listening on it
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	hostPort, err := NewHostPort("127.0.0.1", port)
	require.NoError(t, err)

	checker := NewPortChecker(zerolog.Nop())
	err = checker.CheckRemotePort(context.Background(), hostPort, time.Second)
	require.Error(t, err)

	var netErr *errorwrapper.NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Equal(t, net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), netErr.Address)
}

func TestCheckRemotePort_ResolutionFailure(t *testing.T) {
	hostPort, err := NewHostPort("no-such-host.invalid", 80)
	require.NoError(t, err)

	resolveErr := errors.New("no such host")
	checker := NewPortChecker(zerolog.Nop()).WithLookupHost(
		func(ctx context.Context, host string) ([]string, error) {
			return nil, resolveErr
		})

	err = checker.CheckRemotePort(context.Background(), hostPort, time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolveErr))
}

func TestCheckRemotePort_InvalidTimeout(t *testing.T) {
	hostPort, err := NewHostPort("example.com", 80)
	require.NoError(t, err)

	err = CheckRemotePort(context.Background(), hostPort, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
}
