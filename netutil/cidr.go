package netutil

import (
	"math/big"
	"net/netip"
	"strings"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// Range is an IP address range denoted by CIDR notation. It precomputes
// the [network, broadcast] interval so containment is a pair of compares.
type Range struct {
	prefix    netip.Prefix
	network   netip.Addr
	broadcast netip.Addr
}

// ParseRange parses "address/prefixLength" for IPv4 and IPv6
func ParseRange(cidr string) (Range, error) {
	trimmed := strings.TrimSpace(cidr)
	if trimmed == "" {
		return Range{}, errorwrapper.NewValidationError("cidr", cidr, "must not be blank")
	}

	prefix, err := netip.ParsePrefix(trimmed)
	if err != nil {
		return Range{}, errorwrapper.WrapError(err, "could not parse CIDR '"+trimmed+"'")
	}

	masked := prefix.Masked()
	return Range{
		prefix:    masked,
		network:   masked.Addr(),
		broadcast: lastAddr(masked),
	}, nil
}

// lastAddr sets every host bit of the prefix's address to one
func lastAddr(prefix netip.Prefix) netip.Addr {
	raw := prefix.Addr().AsSlice()
	for bit := prefix.Bits(); bit < len(raw)*8; bit++ {
		raw[bit/8] |= 1 << (7 - bit%8)
	}
	addr, _ := netip.AddrFromSlice(raw)
	return addr
}

// Prefix returns the underlying masked prefix
func (r Range) Prefix() netip.Prefix {
	return r.prefix
}

// Network returns the network address (all host bits zero)
func (r Range) Network() netip.Addr {
	return r.network
}

// Broadcast returns the last address of the range. For IPv6 this is not a
// broadcast address in the protocol sense, just the interval end.
func (r Range) Broadcast() netip.Addr {
	return r.broadcast
}

// Contains reports whether addr falls inside the range. IPv4-mapped IPv6
// addresses are unmapped before comparison; otherwise the address family
// must match the range's.
func (r Range) Contains(addr netip.Addr) bool {
	candidate := addr.Unmap()
	if candidate.BitLen() != r.network.BitLen() {
		return false
	}
	return r.network.Compare(candidate) <= 0 && candidate.Compare(r.broadcast) <= 0
}

// ContainsString parses addr and reports whether it falls inside the range
func (r Range) ContainsString(addr string) (bool, error) {
	parsed, err := netip.ParseAddr(strings.TrimSpace(addr))
	if err != nil {
		return false, errorwrapper.WrapError(err, "could not parse address '"+addr+"'")
	}
	return r.Contains(parsed), nil
}

// Size returns the total number of addresses in the range. IPv6 ranges
// overflow every machine word size, hence the big integer.
func (r Range) Size() *big.Int {
	hostBits := uint(r.network.BitLen() - r.prefix.Bits())
	return new(big.Int).Lsh(big.NewInt(1), hostBits)
}

// First returns the first usable host address: network+1 for IPv4 prefixes
// shorter than /31, the network address otherwise
func (r Range) First() netip.Addr {
	if r.network.Is4() && r.prefix.Bits() < 31 {
		return r.network.Next()
	}
	return r.network
}

// Last returns the last usable host address: broadcast-1 for IPv4 prefixes
// shorter than /31, the interval end otherwise
func (r Range) Last() netip.Addr {
	if r.network.Is4() && r.prefix.Bits() < 31 {
		return r.broadcast.Prev()
	}
	return r.broadcast
}

// String returns the masked CIDR notation
func (r Range) String() string {
	return r.prefix.String()
}
