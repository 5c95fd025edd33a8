package checks

import "time"

const DEFAULT_TIMEOUT = time.Millisecond * 500

const (
	MIN_PROBE_INTERVAL     = time.Second * 5
	DEFAULT_PROBE_INTERVAL = time.Second * 30
)

const (
	TCP_FULL = "TCP-FULL"
	TCP_HALF = "TCP-HALF"
	DNS      = "DNS"
)
