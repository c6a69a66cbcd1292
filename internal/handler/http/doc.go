// Package http implements the inbound HTTP transport of the action
// protocol: a single POST endpoint carrying request envelopes, a health
// endpoint, and the middleware stack (trace ids, logging, gzip, CORS).
package http
