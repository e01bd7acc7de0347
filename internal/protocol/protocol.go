// Package protocol holds the basic types shared by the estimation core.
package protocol

// A ByteCount of segment payload
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// InvalidByteCount is an invalid byte count
const InvalidByteCount ByteCount = -1
