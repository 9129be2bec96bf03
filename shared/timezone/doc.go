// Package timezone holds the application location used to read and render
// booking instants.
//
// Instants that carry an explicit offset (RFC 3339) are taken as-is. Instants
// without one, such as "2024-04-02T09:00:00", are read in the application
// location configured through APP_TIMEZONE (UTC when unset or unknown).
// Comparisons between instants never depend on the location.
package timezone
