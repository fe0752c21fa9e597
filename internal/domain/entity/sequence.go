package entity

// SequenceCounter backs the human-readable order and bill numbers. One row
// per numbering scope (e.g. "bill:<franchise-id>"), advanced with a single
// atomic upsert-increment so concurrent writers never observe the same value.
type SequenceCounter struct {
	Scope string `gorm:"size:64;primary_key"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for the SequenceCounter model
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
