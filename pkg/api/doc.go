// Package api exposes the sampler over HTTP.
//
// Endpoints (rate limited):
//   - GET  /v1/sample?kind=K&count=N&seed=S - draw a batch with the server profile
//   - POST /v1/sample?kind=K&count=N&seed=S - draw a batch with the posted YAML or JSON profile
//   - GET  /v1/check?kind=C&value=V...      - run the parser over values
//   - GET  /v1/kinds                        - list generator kinds
//
// System endpoints (health, readiness, metrics) come from pkg/server.
//
// Example:
//
//	curl -s "localhost:8080/v1/sample?kind=version-string&count=5&seed=42"
//
// Errors are JSON ErrorResponse bodies. Bad parameters and invalid profiles
// are 400, unknown kinds 404, and interrupted batches 504.
package api
