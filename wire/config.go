package wire

import (
	"os"
	"strconv"
)

// Config controls limits applied by the runtime while decoding.
type Config struct {
	// MaxLength bounds the declared length of any length-delimited value
	// (strings, bytes, nested messages, packed blocks, preserved fields).
	// A larger prefix fails with ErrLengthTooLarge before any allocation.
	MaxLength uint64
}

// DefaultMaxLength is the 2GiB ceiling protobuf places on a single message.
const DefaultMaxLength = 1<<31 - 1

var config = Config{
	MaxLength: DefaultMaxLength,
}

// SetConfig sets the global wire configuration. A zero MaxLength restores
// the default.
func SetConfig(c Config) {
	if c.MaxLength == 0 {
		c.MaxLength = DefaultMaxLength
	}
	config = c
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config { return config }

func init() {
	// Optional env toggle for test harnesses; default remains unchanged if unset.
	if v := os.Getenv("PROTOSERIAL_MAX_LENGTH"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			config.MaxLength = n
		}
	}
}
