// Package domain contains the core entities and sentinel errors for ipextractor.
//
// This package has no dependencies on infrastructure concerns (file system,
// PDF parsing, logging) and contains only pure value types.
//
// # Entities
//
//   - [Address]: a validated IPv4 address as four octets
//   - [WatchState]: digests of documents already processed by the watcher
//
// # Errors
//
// Fatal conditions are reported with the sentinel errors in errors.go and can
// be checked with errors.Is. Candidate validation never produces an error.
package domain
