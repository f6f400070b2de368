package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/taurus-i/merkle-mountain-range/mmr"
)

// DemoConfig is the toml-encoded configuration of the demonstration
// harness.
type DemoConfig struct {
	// MaxHeight bounds the number of levels; capacity is 2^MaxHeight - 1
	// leaves.
	MaxHeight int `toml:"max_height"`

	// Algorithm names the hash algorithm, "keccak256" or "blake3".
	Algorithm string `toml:"algorithm"`

	// LeafCount is how many demo leaves ("1", "2", ...) to append.
	LeafCount int `toml:"leaf_count"`

	// ProveLeaf is the leaf index the demo proves and verifies.
	ProveLeaf uint64 `toml:"prove_leaf"`

	Logger *LoggerConfig `toml:"logger"`
}

// DefaultDemoConfig mirrors the historical demo run: a blake3 range of
// height 9 holding the decimal strings "1" through "15", proving leaf 5.
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		MaxHeight: 9,
		Algorithm: mmr.Blake3.String(),
		LeafCount: 15,
		ProveLeaf: 5,
		Logger: &LoggerConfig{
			Environment: "development",
		},
	}
}

// LoadDemoConfig reads a DemoConfig from the toml file at path.
func LoadDemoConfig(path string) (*DemoConfig, error) {
	conf := &DemoConfig{}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}
	return conf, nil
}

// Save writes the config in toml encoding to the file at path.
func (conf *DemoConfig) Save(path string) error {
	var confBuf bytes.Buffer
	e := toml.NewEncoder(&confBuf)
	if err := e.Encode(conf); err != nil {
		return err
	}
	return os.WriteFile(path, confBuf.Bytes(), 0600)
}

// NewRange constructs the accumulator the config describes and appends its
// demo leaves.
func (conf *DemoConfig) NewRange() (*mmr.Range, error) {
	alg, err := mmr.ParseAlgorithm(conf.Algorithm)
	if err != nil {
		return nil, err
	}
	r, err := mmr.New(conf.MaxHeight, alg)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= conf.LeafCount; i++ {
		if err := r.AddLeaf([]byte(fmt.Sprintf("%d", i))); err != nil {
			return nil, err
		}
	}
	return r, nil
}
