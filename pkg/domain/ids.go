package domain

import "github.com/segmentio/ksuid"

// ID prefixes of generated entity identifiers.
const (
	PrefixBatch     = "b"
	PrefixTransfer  = "t"
	PrefixLabReport = "lab"
	PrefixQRRecord  = "qr"
	PrefixEvent     = "e"
	PrefixOrder     = "o"
	PrefixTransport = "tl"
)

// NewID returns "<prefix>_<ksuid>". KSUIDs sort by creation time, so ids keep
// the ordering of the timestamp based ids the demo fixtures use.
func NewID(prefix string) string {
	return prefix + "_" + ksuid.New().String()
}
