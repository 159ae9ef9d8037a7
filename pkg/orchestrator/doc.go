// Package orchestrator wires the loader, normalizer, orphan injector, and
// renderer stages into a single entry point, memoizing loaded Datasets per
// source with a single-flight guarantee so the pipeline runs at most once per
// URL for the lifetime of the process.
package orchestrator
