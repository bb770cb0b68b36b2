// Package auth protects HTTP routes with a static API key.
package auth
