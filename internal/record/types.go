package record

// Direction is the call direction enum carried by every detail record.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// DetailRecord is a single call record belonging to exactly one master (or to
// the orphan bucket). Values are immutable once constructed; the struct is
// always passed by value. JSON tags match the wire shape of the feed.
type DetailRecord struct {
	CallID     string    `json:"callId"`
	Direction  Direction `json:"direction"`
	Number     string    `json:"number"`
	Duration   int64     `json:"duration"`
	SwitchCode string    `json:"switchCode"`
}

// MasterRecord is a top-level row: an account summary plus its ordered call
// records. Details may be empty.
type MasterRecord struct {
	Name    string         `json:"name"`
	Account string         `json:"account"`
	Calls   int64          `json:"calls"`
	Minutes int64          `json:"minutes"`
	Details []DetailRecord `json:"callRecords"`
}

// Dataset is an ordered sequence of masters. A fully loaded Dataset carries
// exactly one orphan bucket, appended last by InjectOrphans.
type Dataset []MasterRecord
