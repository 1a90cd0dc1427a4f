package cvsscore

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

// Config is the configuration for an [Engine].
//
// The zero value is usable and results in the defaults.
type Config struct {
	// BatchConcurrency is the maximum number of vectors scored concurrently by
	// [Engine.ScoreBatch]. If zero, GOMAXPROCS is used.
	BatchConcurrency int `json:"batch_concurrency" yaml:"batch_concurrency"`
	// DisableTelemetry turns off spans and metrics for the Engine.
	DisableTelemetry bool `json:"disable_telemetry" yaml:"disable_telemetry"`
}

// ConfigUnmarshaler can be thought of as an Unmarshal function with the byte
// slice provided, or a Decode function.
//
// The function should populate a passed struct with any configuration
// information.
type ConfigUnmarshaler func(any) error

// Configure populates the Config using "f" and validates the result.
func (c *Config) Configure(ctx context.Context, f ConfigUnmarshaler) error {
	if err := f(c); err != nil {
		return &Error{
			Op:    "cvsscore.Config.Configure",
			Kind:  ErrInvalid,
			Inner: err,
		}
	}
	if err := c.validate(); err != nil {
		return err
	}
	slog.DebugContext(ctx, "configured",
		"batch_concurrency", c.BatchConcurrency,
		"disable_telemetry", c.DisableTelemetry)
	return nil
}

func (c *Config) validate() error {
	if c.BatchConcurrency < 0 {
		return &Error{
			Op:      "cvsscore.Config",
			Kind:    ErrInvalid,
			Message: fmt.Sprintf("bad batch_concurrency: %d", c.BatchConcurrency),
		}
	}
	return nil
}

// BatchLimit reports the concurrency limit to use.
func (c *Config) batchLimit() int {
	if c.BatchConcurrency == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.BatchConcurrency
}
