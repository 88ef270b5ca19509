package pkguid

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates Snowflake IDs rendered as decimal strings.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &nodeID); err != nil {
		return 0, err
	}

	return nodeID & (1<<snowflake.NodeBits - 1), nil
}

// NewSnowflake constructs a Snowflake generator with a random node ID, since
// each CLI invocation is its own short-lived node.
func NewSnowflake() (*Snowflake, error) {
	nodeID, err := generateRandomNodeID()
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique ID.
func (s *Snowflake) Generate() string {
	return s.node.Generate().String()
}
