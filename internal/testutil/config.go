package testutil

import (
	"maps"

	"github.com/interutils/cli/internal/domain"
)

// Config is an in-memory domain.ConfigProvider. A non-nil Err is returned
// by every mutation, which then leaves Values untouched.
type Config struct {
	Values map[string]string
	Err    error
}

// NewConfig returns a Config holding a copy of values.
func NewConfig(values map[string]string) *Config {
	c := &Config{Values: maps.Clone(values)}
	if c.Values == nil {
		c.Values = make(map[string]string)
	}
	return c
}

func (c *Config) Get(key string) (string, bool) {
	v, ok := c.Values[key]
	return v, ok
}

func (c *Config) All() map[string]string {
	return maps.Clone(c.Values)
}

func (c *Config) Set(key, value string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Values[key] = value
	return nil
}

func (c *Config) Unset(key string) (bool, error) {
	if c.Err != nil {
		return false, c.Err
	}
	_, ok := c.Values[key]
	delete(c.Values, key)
	return ok, nil
}

var _ domain.ConfigProvider = (*Config)(nil)
