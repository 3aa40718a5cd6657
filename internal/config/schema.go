package config

// EngineConfig controls how overlap counting passes are run.
type EngineConfig struct {
	Engine Engine `yaml:"engine"`
	Cache  Cache  `yaml:"cache"`
}

type Engine struct {
	// Threshold is the minimum number of covering segments for a point to count.
	Threshold int `yaml:"threshold"`
	// Workers > 1 rasterizes segments concurrently into per-worker maps.
	Workers int `yaml:"workers"`
	// Validate cross-checks every result with the pairwise intersection validator.
	Validate bool `yaml:"validate"`
	// MaxValidatorSegments bounds the quadratic validator; larger inputs skip the cross-check.
	MaxValidatorSegments int `yaml:"max_validator_segments"`
}

type Cache struct {
	Enabled bool   `yaml:"enabled"`
	Prefix  string `yaml:"prefix"`
	TTL     string `yaml:"ttl"`
}
