// Package overlay loads and applies column overlay documents that tweak the
// fixed grid column constants with presentation hints (labels, minimum widths,
// sortability). The package keeps the config builder unaware of optional
// overlays while providing a simple apply step orchestrator callers can opt
// into.
package overlay
