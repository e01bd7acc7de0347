package protocol

import "time"

// DefaultInitialRTT is the RTT estimate used before any sample is taken
const DefaultInitialRTT = time.Second

// DefaultMinRTO is the lower bound for the retransmission timeout
const DefaultMinRTO = 200 * time.Millisecond

// DefaultMaxRTOMultiplier caps the exponential backoff of the retransmission timeout
const DefaultMaxRTOMultiplier = 64

// DefaultGain is the weight of a new sample in the mean deviation filter
const DefaultGain = 0.1

// DefaultG is the weight of a new marking fraction sample when smoothing alpha
const DefaultG = 1.0 / 16

// MaxRTO is the upper bound for the retransmission timeout, after backoff is applied
const MaxRTO = 60 * time.Second
