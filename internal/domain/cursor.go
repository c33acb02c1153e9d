package domain

// Cursor is the ordering triple of the last committed event. It is the only
// durable external state besides the entity store itself: restart resumes
// strictly after it.
type Cursor struct {
	BlockNumber uint64 `json:"block_number"`
	TxIndex     uint   `json:"tx_index"`
	LogIndex    uint   `json:"log_index"`
}

// After reports whether c is strictly after other in emission order
// (block number, then transaction index, then log index).
func (c Cursor) After(other Cursor) bool {
	if c.BlockNumber != other.BlockNumber {
		return c.BlockNumber > other.BlockNumber
	}
	if c.TxIndex != other.TxIndex {
		return c.TxIndex > other.TxIndex
	}
	return c.LogIndex > other.LogIndex
}

// IsZero reports whether the cursor has never been set
func (c Cursor) IsZero() bool {
	return c.BlockNumber == 0 && c.TxIndex == 0 && c.LogIndex == 0
}
