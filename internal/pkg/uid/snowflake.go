package uid

import (
	"os"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a snowflake generator. The node number is derived from
// the process ID; instances sharing a machine get distinct numbers in practice.
func NewSnowflake() (*Snowflake, error) {
	n, err := snowflake.NewNode(int64(os.Getpid() % 1024))
	if err != nil {
		return nil, err
	}
	return &Snowflake{node: n}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
