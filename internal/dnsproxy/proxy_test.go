package dnsproxy

import (
	"net"
	"net/netip"
	"testing"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

type staticSource map[string]string

func (s staticSource) Lookup(host string) (netip.Addr, bool) {
	literal, ok := s[host]
	if !ok {
		return netip.Addr{}, false
	}
	return netip.MustParseAddr(literal), true
}

// recordingWriter satisfies dns.ResponseWriter and captures the reply.
type recordingWriter struct {
	msg *dns.Msg
}

func (w *recordingWriter) LocalAddr() net.Addr  { return &net.UDPAddr{IP: net.IPv4zero, Port: 53} }
func (w *recordingWriter) RemoteAddr() net.Addr { return &net.UDPAddr{IP: net.IPv4zero, Port: 5353} }
func (w *recordingWriter) WriteMsg(m *dns.Msg) error {
	w.msg = m
	return nil
}
func (w *recordingWriter) Write(b []byte) (int, error) { return len(b), nil }
func (w *recordingWriter) Close() error                { return nil }
func (w *recordingWriter) TsigStatus() error           { return nil }
func (w *recordingWriter) TsigTimersOnly(bool)         {}
func (w *recordingWriter) Hijack()                     {}

func newTestProxy(t *testing.T, sources ...OverrideSource) *Proxy {
	t.Helper()
	return New("127.0.0.1:0", []string{"192.0.2.53"}, zap.NewNop(), WithSources(sources...))
}

func query(name string, qtype uint16) *dns.Msg {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	return m
}

func TestOverrideAnswer(t *testing.T) {
	p := newTestProxy(t, staticSource{"foo.test": "203.0.113.9"})

	w := &recordingWriter{}
	p.handleRequest(w, query("foo.test", dns.TypeA))

	if w.msg == nil {
		t.Fatal("no response written")
	}
	if w.msg.Rcode != dns.RcodeSuccess || !w.msg.Authoritative {
		t.Fatalf("unexpected response header: %+v", w.msg.MsgHdr)
	}
	if len(w.msg.Answer) != 1 {
		t.Fatalf("expected 1 answer, but got: %d", len(w.msg.Answer))
	}
	a, ok := w.msg.Answer[0].(*dns.A)
	if !ok {
		t.Fatalf("expected an A record, got: %T", w.msg.Answer[0])
	}
	if !a.A.Equal(net.ParseIP("203.0.113.9")) {
		t.Errorf("answer = %v, want 203.0.113.9", a.A)
	}
	if a.Hdr.Ttl != OVERRIDE_TTL {
		t.Errorf("ttl = %d, want %d", a.Hdr.Ttl, OVERRIDE_TTL)
	}
}

func TestSourcesConsultedInOrder(t *testing.T) {
	p := newTestProxy(t,
		staticSource{"foo.test": "10.0.0.1"},
		staticSource{"foo.test": "10.0.0.2"},
	)

	w := &recordingWriter{}
	p.handleRequest(w, query("foo.test", dns.TypeA))

	a := w.msg.Answer[0].(*dns.A)
	if !a.A.Equal(net.ParseIP("10.0.0.1")) {
		t.Errorf("answer = %v, want the first source to win", a.A)
	}
}

func TestAAAASuppressed(t *testing.T) {
	p := newTestProxy(t, staticSource{"foo.test": "203.0.113.9"})

	w := &recordingWriter{}
	p.handleRequest(w, query("foo.test", dns.TypeAAAA))

	if w.msg == nil {
		t.Fatal("no response written")
	}
	if w.msg.Rcode != dns.RcodeSuccess {
		t.Errorf("rcode = %v, want NOERROR", w.msg.Rcode)
	}
	if len(w.msg.Answer) != 0 {
		t.Errorf("AAAA must never carry answers, got: %+v", w.msg.Answer)
	}
}

func TestForwardFailureIsServFail(t *testing.T) {
	// 192.0.2.53 is TEST-NET; the exchange fails and the proxy must report
	// SERVFAIL rather than inventing an answer.
	p := newTestProxy(t)
	p.client.Timeout = 1 // nanosecond, fail immediately

	w := &recordingWriter{}
	p.handleRequest(w, query("example.org", dns.TypeA))

	if w.msg == nil {
		t.Fatal("no response written")
	}
	if w.msg.Rcode != dns.RcodeServerFailure {
		t.Errorf("rcode = %v, want SERVFAIL", w.msg.Rcode)
	}
}

func TestMultiQuestionRefused(t *testing.T) {
	p := newTestProxy(t)

	m := query("foo.test", dns.TypeA)
	m.Question = append(m.Question, dns.Question{Name: "bar.test.", Qtype: dns.TypeA, Qclass: dns.ClassINET})

	w := &recordingWriter{}
	p.handleRequest(w, m)

	if w.msg.Rcode != dns.RcodeRefused {
		t.Errorf("rcode = %v, want REFUSED", w.msg.Rcode)
	}
}

func TestSetUpstreamsKeepsLastKnownGood(t *testing.T) {
	p := newTestProxy(t)

	p.SetUpstreams([]string{"10.0.0.1"})
	p.SetUpstreams(nil)

	got := *p.upstreams.Load()
	if len(got) != 1 || got[0] != "10.0.0.1:53" {
		t.Errorf("upstreams = %v, want the previous set kept with a default port", got)
	}
}
