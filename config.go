package rtt

import (
	"errors"
	"time"

	"github.com/rtt-go/rtt-go/internal/protocol"
	"github.com/rtt-go/rtt-go/logging"
)

// Config holds the tunables of an estimator.
// Zero values mean the default.
type Config struct {
	// InitialRTT is the estimate used before any sample was taken.
	InitialRTT time.Duration
	// MinRTO is the lower bound for the retransmission timeout.
	MinRTO time.Duration
	// MaxMultiplier caps the exponential timeout backoff.
	MaxMultiplier uint32
	// Gain is the weight of a new sample in the mean deviation filter, in (0, 1).
	Gain float64
	// G is the weight of a marking fraction sample when smoothing alpha, in (0, 1).
	G float64
	// Clock supplies the current time. The system clock is used if unset.
	Clock Clock
	// Tracer traces the events of this estimator.
	Tracer *logging.ConnectionTracer
}

// Clone clones a Config
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.InitialRTT < 0 {
		return errors.New("invalid value for Config.InitialRTT")
	}
	if config.MinRTO < 0 {
		return errors.New("invalid value for Config.MinRTO")
	}
	if config.Gain < 0 || config.Gain >= 1 {
		return errors.New("invalid value for Config.Gain")
	}
	if config.G < 0 || config.G >= 1 {
		return errors.New("invalid value for Config.G")
	}
	return nil
}

// populateConfig populates fields in the Config with their default values, if none are set
// it may be called with nil
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	initialRTT := config.InitialRTT
	if initialRTT == 0 {
		initialRTT = protocol.DefaultInitialRTT
	}
	minRTO := config.MinRTO
	if minRTO == 0 {
		minRTO = protocol.DefaultMinRTO
	}
	maxMultiplier := config.MaxMultiplier
	if maxMultiplier == 0 {
		maxMultiplier = protocol.DefaultMaxRTOMultiplier
	}
	gain := config.Gain
	if gain == 0 {
		gain = protocol.DefaultGain
	}
	g := config.G
	if g == 0 {
		g = protocol.DefaultG
	}
	clock := config.Clock
	if clock == nil {
		clock = DefaultClock{}
	}

	return &Config{
		InitialRTT:    initialRTT,
		MinRTO:        minRTO,
		MaxMultiplier: maxMultiplier,
		Gain:          gain,
		G:             g,
		Clock:         clock,
		Tracer:        config.Tracer,
	}
}
