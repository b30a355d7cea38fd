// Package espn fetches league data from the ESPN fantasy football read API.
//
// Each configured division is an independent ESPN league; the client
// authenticates with the account's SWID and espn_s2 cookies and exposes
// typed fetchers for league settings, team records, and the full season
// schedule. Wire shapes stay private to this package; every fetcher returns
// the neutral types from internal/model.
//
// The client performs no retries or backoff: a fetch failure for any
// division is fatal to the whole report run.
package espn
