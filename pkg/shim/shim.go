// Package shim substitutes the shim's resolution semantics for the
// process-wide default resolver. The extension point is net.DefaultResolver:
// after Activate, every lookup in the process that goes through the default
// resolver is served by the local shim proxy, which applies the override
// table and the IPv4-only constraint.
package shim

import (
	"context"
	"net"
	"time"
)

// The proxy is local, so fail fast instead of inheriting the multi-second
// timeouts meant for remote nameservers.
var dialer = &net.Dialer{
	Timeout: 2 * time.Second,
}

// Activate points the process-wide default resolver at the shim proxy
// listening on addr ("host:port"). Call it before any lookups happen,
// typically from the host program's main or an init.
func Activate(addr string) {
	net.DefaultResolver.PreferGo = true
	net.DefaultResolver.Dial = func(ctx context.Context, network, _ string) (net.Conn, error) {
		switch network {
		case "udp", "udp4", "udp6":
			return dialer.DialContext(ctx, "udp4", addr)
		default:
			return dialer.DialContext(ctx, "tcp4", addr)
		}
	}
}
