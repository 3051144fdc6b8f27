// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [TextSource]: Reads a document and returns its text, one block per page
//   - [OutputWriter]: Writes encoded results next to the source document
//   - [StateRepository]: Persists and loads watcher state
//   - [Metrics]: Records extraction outcomes
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with tabula,
// the file system and Prometheus.
package ports
