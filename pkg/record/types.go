package record

import internalrecord "github.com/goliatone/go-gridgen/internal/record"

// Direction re-exports the internal call-direction enumeration.
type Direction = internalrecord.Direction

const (
	DirectionInbound  = internalrecord.DirectionInbound
	DirectionOutbound = internalrecord.DirectionOutbound
)

type DetailRecord = internalrecord.DetailRecord
type MasterRecord = internalrecord.MasterRecord
type Dataset = internalrecord.Dataset
type SchemaError = internalrecord.SchemaError

// Orphan bucket identity, re-exported so consumers can recognise the
// synthetic master without depending on internal packages.
const (
	OrphanBucketName    = internalrecord.OrphanBucketName
	OrphanBucketAccount = internalrecord.OrphanBucketAccount
)

// Normalize converts the decoded feed tree into a Dataset without the orphan
// bucket. See the internal package for the full contract.
func Normalize(tree []map[string]any) (Dataset, error) {
	return internalrecord.Normalize(tree)
}

// InjectOrphans appends the synthetic orphan bucket; call exactly once per
// load.
func InjectOrphans(dataset Dataset) Dataset {
	return internalrecord.InjectOrphans(dataset)
}

// OrphanBucket returns a copy of the synthetic master definition.
func OrphanBucket() MasterRecord {
	return internalrecord.OrphanBucket()
}
