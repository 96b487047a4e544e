package notedata

import (
	"github.com/cloudnotes/notectl/internal/options"
	"github.com/cloudnotes/notectl/schema"
)

// DefaultMaxScanText is the upper bound, in bytes, on a single text run
// accepted by the heuristic scan. Longer candidates are treated as binary
// data that happens to decode as UTF-8.
const DefaultMaxScanText = 10000

type decodeConfig struct {
	version      schema.Version
	scanFallback bool
	maxScanText  int
}

func defaultDecodeConfig() decodeConfig {
	return decodeConfig{
		version:      schema.Latest,
		scanFallback: true,
		maxScanText:  DefaultMaxScanText,
	}
}

// Option adjusts how a body payload is decoded.
type Option = options.Option[decodeConfig]

// WithSchemaVersion selects the payload schema version whose field path
// is used to locate note text. Unknown versions fall back to
// schema.Latest at extraction time.
func WithSchemaVersion(v schema.Version) Option {
	return func(cfg *decodeConfig) {
		cfg.version = v
	}
}

// WithScanFallback toggles the heuristic text scan that runs when the
// schema path yields no fragments. Enabled by default; disable it when
// only schema-faithful extractions should count.
func WithScanFallback(enabled bool) Option {
	return func(cfg *decodeConfig) {
		cfg.scanFallback = enabled
	}
}

// WithMaxScanText caps the size of a single text run the heuristic scan
// will accept. Values <= 0 keep the previous setting.
func WithMaxScanText(n int) Option {
	return func(cfg *decodeConfig) {
		if n > 0 {
			cfg.maxScanText = n
		}
	}
}
