// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration and debug introspection for pipelines
// built on syncq primitives.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads and merged updates with reload listeners
//   - Counters fed by syncq.WithMetrics
//   - Debug probes reporting live queue sizes and done flags
package control
