package resolver

import (
	"context"
	"net"
	"net/netip"
)

// SystemResolver is the real resolver: it delegates name and service
// resolution to the platform resolver through net.Resolver and only shapes
// the answers into AddrInfo records. Errors come back from net verbatim.
type SystemResolver struct {
	resolver *net.Resolver
}

func NewSystemResolver() *SystemResolver {
	return &SystemResolver{resolver: net.DefaultResolver}
}

func (s *SystemResolver) Resolve(ctx context.Context, req *Request) ([]AddrInfo, error) {
	hints := Hints{}
	if req.Hints != nil {
		hints = *req.Hints
	}

	port, err := s.lookupPort(ctx, hints.SockType, req.Service)
	if err != nil {
		return nil, err
	}

	addrs, err := s.lookupHost(ctx, req.Host, hints)
	if err != nil {
		return nil, err
	}

	addrs = filterFamily(addrs, hints.Family)
	if len(addrs) == 0 {
		return nil, &net.DNSError{
			Err:        "no address for requested family",
			Name:       req.Host,
			IsNotFound: true,
		}
	}

	records := make([]AddrInfo, 0, len(addrs)*2)
	for _, addr := range addrs {
		for _, st := range sockTypes(hints.SockType) {
			records = append(records, AddrInfo{
				Family:   familyOf(addr),
				SockType: st,
				Protocol: hints.Protocol,
				Addr:     netip.AddrPortFrom(addr.Unmap(), port),
			})
		}
	}
	return records, nil
}

func (s *SystemResolver) lookupHost(ctx context.Context, host string, hints Hints) ([]netip.Addr, error) {
	if hints.Flags&NumericHost != 0 {
		addr, err := netip.ParseAddr(host)
		if err != nil {
			return nil, &net.DNSError{
				Err:        "host is not a numeric address",
				Name:       host,
				IsNotFound: true,
			}
		}
		return []netip.Addr{addr}, nil
	}

	// An absent node means the loopback address of the requested family,
	// matching what the platform resolver does for a nil node.
	if host == "" {
		if hints.Family == FamilyIPv6 {
			return []netip.Addr{netip.IPv6Loopback()}, nil
		}
		return []netip.Addr{netip.AddrFrom4([4]byte{127, 0, 0, 1})}, nil
	}

	return s.resolver.LookupNetIP(ctx, network(hints.Family), host)
}

func (s *SystemResolver) lookupPort(ctx context.Context, st SockType, service string) (uint16, error) {
	if service == "" {
		return 0, nil
	}

	proto := "tcp"
	if st == SockDatagram {
		proto = "udp"
	}
	port, err := s.resolver.LookupPort(ctx, proto, service)
	if err != nil {
		return 0, err
	}
	return uint16(port), nil
}

func network(family Family) string {
	switch family {
	case FamilyIPv4:
		return "ip4"
	case FamilyIPv6:
		return "ip6"
	}
	return "ip"
}

func filterFamily(addrs []netip.Addr, family Family) []netip.Addr {
	if family == FamilyUnspec {
		return addrs
	}
	kept := addrs[:0]
	for _, addr := range addrs {
		if familyOf(addr) == family {
			kept = append(kept, addr)
		}
	}
	return kept
}

func sockTypes(st SockType) []SockType {
	if st == SockAny {
		return []SockType{SockStream, SockDatagram}
	}
	return []SockType{st}
}
