package record

// The orphan bucket is the single synthetic master appended to every loaded
// Dataset. It owns the call records that have no real master; the literals
// below are the only definition of those records in the module.
const (
	OrphanBucketName    = "Orphaned Record"
	OrphanBucketAccount = "N/A"
)

func orphanDetails() []DetailRecord {
	return []DetailRecord{
		{CallID: "orphan1", Direction: DirectionOutbound, Number: "1234567890", Duration: 0, SwitchCode: "N/A"},
		{CallID: "orphan2", Direction: DirectionInbound, Number: "0987654321", Duration: 0, SwitchCode: "N/A"},
	}
}

// OrphanBucket returns a fresh copy of the synthetic master so callers cannot
// mutate the shared definition.
func OrphanBucket() MasterRecord {
	return MasterRecord{
		Name:    OrphanBucketName,
		Account: OrphanBucketAccount,
		Calls:   0,
		Minutes: 0,
		Details: orphanDetails(),
	}
}

// InjectOrphans appends exactly one orphan bucket to the dataset and returns
// the result as a new slice. It is NOT idempotent: calling it twice yields two
// buckets, so it must run exactly once per load. The orchestrator cache is the
// guard that enforces this.
func InjectOrphans(dataset Dataset) Dataset {
	out := make(Dataset, 0, len(dataset)+1)
	out = append(out, dataset...)
	out = append(out, OrphanBucket())
	return out
}
