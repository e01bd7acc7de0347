// Package logging defines the tracing surface of the estimation core.
package logging

import "github.com/rtt-go/rtt-go/internal/protocol"

type (
	// A SequenceNumber in the transport's sequence space.
	SequenceNumber = protocol.SequenceNumber
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
)
