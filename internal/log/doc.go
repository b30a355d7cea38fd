// Package log provides secure logging functionality with automatic
// sanitization of sensitive information, built on top of the standard slog
// package.
//
// ffreport authenticates against ESPN with session cookies (espn_s2 and
// SWID). Those values grant full account access, and they pass through the
// HTTP layer on every request, so debug logging of requests is one typo
// away from leaking them. The SecureHandler masks cookie and credential
// attributes before any record reaches the underlying handler, even in
// verbose mode.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("request sent",
//	    "cookie", "espn_s2=AEB...",  // masked in output
//	    "url", leagueURL,
//	)
package log
