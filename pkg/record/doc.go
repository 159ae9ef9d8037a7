// Package record exposes the typed master/detail dataset consumed by grid
// builders and renderers. Normalization and orphan injection reside in
// internal/record but return the types aliased here. A fully loaded Dataset is
// immutable and always carries exactly one synthetic orphan bucket as its last
// master, holding the call records that have no real owner.
package record
