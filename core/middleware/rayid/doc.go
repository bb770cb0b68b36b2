// Package rayid assigns a request id to every HTTP request.
package rayid
