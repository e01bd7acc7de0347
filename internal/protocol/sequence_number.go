package protocol

// A SequenceNumber in the transport's 32-bit sequence space.
// All comparisons are relative to a window of less than 2^31 bytes,
// so they stay correct across wraparound.
type SequenceNumber uint32

// LessThan checks if v is before w, i.e. v < w.
func (v SequenceNumber) LessThan(w SequenceNumber) bool {
	return int32(v-w) < 0
}

// LessThanEq returns true if v == w or v is before w.
func (v SequenceNumber) LessThanEq(w SequenceNumber) bool {
	return v == w || v.LessThan(w)
}

// GreaterThan checks if v is after w, i.e. v > w.
func (v SequenceNumber) GreaterThan(w SequenceNumber) bool {
	return int32(v-w) > 0
}

// GreaterThanEq returns true if v == w or v is after w.
func (v SequenceNumber) GreaterThanEq(w SequenceNumber) bool {
	return v == w || v.GreaterThan(w)
}

// InRange checks if v is in the range [a, b).
func (v SequenceNumber) InRange(a, b SequenceNumber) bool {
	return v-a < b-a
}

// Add returns the sequence number following the [v, v+n) window.
func (v SequenceNumber) Add(n ByteCount) SequenceNumber {
	return v + SequenceNumber(n)
}

// Size returns the number of bytes in the window [v, w).
func (v SequenceNumber) Size(w SequenceNumber) ByteCount {
	return ByteCount(uint32(w - v))
}
