// Package clientip resolves the client address of a request behind
// proxies and carries it in the request context.
package clientip
