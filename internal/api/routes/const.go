package routes

import "net/http"

const (
	ROOT = "/"

	OVERRIDES    = ROOT + "overrides" // runtime override rules
	OVERRIDES_ID = OVERRIDES + "/{pattern}"

	GET_OVERRIDES   = http.MethodGet + " " + OVERRIDES
	POST_OVERRIDE   = http.MethodPost + " " + OVERRIDES
	DELETE_OVERRIDE = http.MethodDelete + " " + OVERRIDES_ID

	RESOLVE     = ROOT + "resolve" // debug resolution through the interceptor
	RESOLVE_ID  = RESOLVE + "/{host}"
	GET_RESOLVE = http.MethodGet + " " + RESOLVE_ID

	HEALTHZ     = ROOT + "healthz"
	GET_HEALTHZ = http.MethodGet + " " + HEALTHZ

	METRICS = ROOT + "metrics"
)
