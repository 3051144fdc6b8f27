// Package extract implements the IPv4 extraction pipeline.
//
// Text blocks flow through four stages:
//
//   - [FindCandidates] matches dotted-quad shaped substrings
//   - [Accept] keeps candidates with in-range octets that are publicly routable
//   - [Collector] deduplicates accepted addresses across blocks
//   - [Sort] orders the unique set numerically by octet
//
// [Pipeline] wires the stages together and may scan blocks in parallel.
// Validation failures are never errors: a rejected candidate is simply
// absent from the result.
package extract
