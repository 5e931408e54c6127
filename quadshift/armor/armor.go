package armor

import (
	"errors"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrInvalidConfig = errors.New("armor: invalid data/parity configuration")
	ErrTooManyLost   = errors.New("armor: too many shards lost, cannot recover")
	ErrShardCount    = errors.New("armor: wrong number of shards")
)

// Codec shards byte blobs with Reed-Solomon parity.
type Codec struct {
	enc          reedsolomon.Encoder
	dataShards   int
	parityShards int
}

// New creates a codec with the given shard counts. Up to parityShards shards
// may be lost without losing the blob.
func New(dataShards, parityShards int) (*Codec, error) {
	if dataShards <= 0 || parityShards <= 0 {
		return nil, ErrInvalidConfig
	}
	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return nil, err
	}
	return &Codec{
		enc:          enc,
		dataShards:   dataShards,
		parityShards: parityShards,
	}, nil
}

// DataShards returns the number of data shards.
func (c *Codec) DataShards() int { return c.dataShards }

// ParityShards returns the number of parity shards.
func (c *Codec) ParityShards() int { return c.parityShards }

// TotalShards returns data + parity.
func (c *Codec) TotalShards() int { return c.dataShards + c.parityShards }

// Overhead returns the storage overhead ratio (e.g. 1.4 for a 10+4 config).
func (c *Codec) Overhead() float64 {
	return float64(c.TotalShards()) / float64(c.dataShards)
}

// Protect splits blob into data shards, pads the tail shard, and computes
// parity. The returned slice has TotalShards() entries.
func (c *Codec) Protect(blob []byte) ([][]byte, error) {
	shards, err := c.enc.Split(blob)
	if err != nil {
		return nil, err
	}
	if err := c.enc.Encode(shards); err != nil {
		return nil, err
	}
	return shards, nil
}

// Verify checks that the parity shards are consistent with the data shards.
func (c *Codec) Verify(shards [][]byte) (bool, error) {
	if len(shards) != c.TotalShards() {
		return false, ErrShardCount
	}
	return c.enc.Verify(shards)
}

// Recover reconstructs missing shards (nil entries) and joins the data shards
// back into the original blob of the given size. Returns ErrTooManyLost when
// more than parity-many shards are missing.
func (c *Codec) Recover(shards [][]byte, size int) ([]byte, error) {
	if len(shards) != c.TotalShards() {
		return nil, ErrShardCount
	}
	if err := c.enc.ReconstructData(shards); err != nil {
		if errors.Is(err, reedsolomon.ErrTooFewShards) {
			return nil, ErrTooManyLost
		}
		return nil, err
	}
	blob := make([]byte, 0, size)
	for i := 0; i < c.dataShards && len(blob) < size; i++ {
		remaining := size - len(blob)
		if remaining >= len(shards[i]) {
			blob = append(blob, shards[i]...)
		} else {
			blob = append(blob, shards[i][:remaining]...)
		}
	}
	return blob, nil
}
