package backend

import "errors"

var (
	ErrBackendUnreachable   = errors.New("backend is not reachable")
	ErrBackendMisconfigured = errors.New("health returned HTML, backend base URL may be misconfigured")
)
