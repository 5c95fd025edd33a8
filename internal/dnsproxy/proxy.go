// Package dnsproxy carries the shim semantics onto the wire for processes
// that cannot link the library: a local forwarding DNS server that answers A
// questions from the override table, suppresses AAAA answers entirely, and
// forwards everything else to a healthy upstream.
package dnsproxy

import (
	"net"
	"net/netip"
	"strings"
	"sync/atomic"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

const OVERRIDE_TTL = 10 // seconds; overrides may change between lookups

// OverrideSource answers whether a hostname has a configured override.
type OverrideSource interface {
	Lookup(host string) (netip.Addr, bool)
}

type Proxy struct {
	udp       *dns.Server
	tcp       *dns.Server
	client    *dns.Client
	sources   []OverrideSource
	upstreams atomic.Pointer[[]string]
	log       *zap.SugaredLogger
}

type proxyOption func(*Proxy)

// New creates a proxy listening on addr over both UDP and TCP. Sources are
// consulted in order; the first match wins. Upstreams are the initial
// forwarding targets, replaceable at runtime via SetUpstreams.
func New(addr string, upstreams []string, logger *zap.Logger, opts ...proxyOption) *Proxy {
	p := &Proxy{
		udp:    &dns.Server{Addr: addr, Net: "udp"},
		tcp:    &dns.Server{Addr: addr, Net: "tcp"},
		client: &dns.Client{},
		log:    logger.Sugar(),
	}

	for _, opt := range opts {
		opt(p)
	}

	none := []string{}
	p.upstreams.Store(&none)
	p.SetUpstreams(upstreams)
	p.udp.Handler = dns.HandlerFunc(p.handleRequest)
	p.tcp.Handler = dns.HandlerFunc(p.handleRequest)
	return p
}

func WithSources(sources ...OverrideSource) proxyOption {
	return func(p *Proxy) {
		p.sources = sources
	}
}

// SetUpstreams replaces the forwarding targets. The prober calls this with
// the currently healthy set; an empty set keeps the previous one, since a
// proxy with nowhere to forward is worse than one with a suspect upstream.
func (p *Proxy) SetUpstreams(upstreams []string) {
	if len(upstreams) == 0 {
		return
	}
	normalized := make([]string, 0, len(upstreams))
	for _, upstream := range upstreams {
		if _, _, err := net.SplitHostPort(upstream); err != nil {
			upstream = net.JoinHostPort(upstream, "53")
		}
		normalized = append(normalized, upstream)
	}
	p.upstreams.Store(&normalized)
}

func (p *Proxy) ListenAndServe() error {
	errs := make(chan error, 2)
	go func() { errs <- p.udp.ListenAndServe() }()
	go func() { errs <- p.tcp.ListenAndServe() }()
	return <-errs
}

func (p *Proxy) Shutdown() error {
	udpErr := p.udp.Shutdown()
	tcpErr := p.tcp.Shutdown()
	if udpErr != nil {
		return udpErr
	}
	return tcpErr
}

func (p *Proxy) handleRequest(w dns.ResponseWriter, r *dns.Msg) {
	if len(r.Question) != 1 {
		p.refuse(w, r)
		return
	}
	q := r.Question[0]

	if q.Qclass == dns.ClassINET {
		switch q.Qtype {
		case dns.TypeA:
			host := strings.TrimSuffix(q.Name, ".")
			if addr, ok := p.lookupOverride(host); ok {
				p.answerOverride(w, r, q, addr)
				return
			}

		case dns.TypeAAAA:
			// The family-forced fallback in DNS terms: a clean empty answer
			// steers clients onto their A results.
			m := new(dns.Msg)
			m.SetReply(r)
			m.Authoritative = true
			p.writeMsg(w, m)
			queriesTotal.WithLabelValues(outcomeSuppressed).Inc()
			return
		}
	}

	p.forward(w, r)
}

func (p *Proxy) lookupOverride(host string) (netip.Addr, bool) {
	for _, source := range p.sources {
		if addr, ok := source.Lookup(host); ok {
			return addr, true
		}
	}
	return netip.Addr{}, false
}

func (p *Proxy) answerOverride(w dns.ResponseWriter, r *dns.Msg, q dns.Question, addr netip.Addr) {
	m := new(dns.Msg)
	m.SetReply(r)
	m.Authoritative = true
	m.Answer = append(m.Answer, &dns.A{
		Hdr: dns.RR_Header{
			Name:   q.Name,
			Rrtype: dns.TypeA,
			Class:  dns.ClassINET,
			Ttl:    OVERRIDE_TTL,
		},
		A: addr.AsSlice(),
	})
	p.writeMsg(w, m)
	queriesTotal.WithLabelValues(outcomeOverride).Inc()
	p.log.Debugf("override answer: %v -> %v", q.Name, addr)
}

func (p *Proxy) forward(w dns.ResponseWriter, r *dns.Msg) {
	var response *dns.Msg
	var err error

	for _, upstream := range *p.upstreams.Load() {
		response, _, err = p.client.Exchange(r, upstream)
		if err == nil && response != nil {
			break
		}
		upstreamErrors.WithLabelValues(upstream).Inc()
		p.log.Warnf("upstream %v failed: %v", upstream, err)
	}

	if err != nil || response == nil {
		m := new(dns.Msg)
		m.SetReply(r)
		m.Rcode = dns.RcodeServerFailure
		p.writeMsg(w, m)
		queriesTotal.WithLabelValues(outcomeFailed).Inc()
		return
	}

	response.Id = r.Id
	response.Response = true
	response.RecursionAvailable = true
	p.writeMsg(w, response)
	queriesTotal.WithLabelValues(outcomeForwarded).Inc()
}

func (p *Proxy) refuse(w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)
	m.Rcode = dns.RcodeRefused
	p.writeMsg(w, m)
	queriesTotal.WithLabelValues(outcomeRefused).Inc()
}

func (p *Proxy) writeMsg(w dns.ResponseWriter, m *dns.Msg) {
	if err := w.WriteMsg(m); err != nil {
		p.log.Errorf("failed to write response: %v", err)
	}
}
