// Package client is the HTTP adapter between the page controllers and the
// bugdesk REST backend. It makes exactly one attempt per call: no retries,
// no timeouts of its own, and no de-duplication of overlapping requests.
package client
