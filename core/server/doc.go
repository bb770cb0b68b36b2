// Package server holds the HTTP server configuration.
//
// The cmd package owns server startup; this package only defines the settings the
// start command reads: the listen port, the optional API key protecting every route,
// and whether the product catalog is loaded before the listener opens.
package server
