package sdk

// Event is a structured emission: a small set of topics for filtering plus
// an opaque data payload. Off-chain indexers subscribe by topic.
type Event struct {
	Topics []string
	Data   string
}

// MaxEventTopics is the host limit on topics per event.
const MaxEventTopics = 4
