package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/BurntSushi/toml"
)

const DefaultAddr = ":8080"

// Config is the server's static configuration, usually read from a TOML
// file such as:
//
//	addr = "127.0.0.1:8080"
type Config struct {
	Addr string `toml:"addr"`
}

func Default() Config {
	return Config{Addr: DefaultAddr}
}

// ParseFile reads a TOML config file. Keys missing from the file keep
// their defaults; unknown keys are an error.
func ParseFile(filename string) (Config, error) {
	c := Default()
	meta, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid addr %q: %w", c.Addr, err)
	}
	return nil
}
