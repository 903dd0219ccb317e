package config

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Unbounded disables the take limit.
const Unbounded = -1

var (
	validLevels     = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}
	validFormats    = []string{"console", "json"}
	validOutputs    = []string{"stdout", "stderr"}
	validOps        = []string{"==", "!=", ">", ">=", "<", "<=", "contains", "exists"}
	validDirections = []string{"asc", "desc"}
)

// Config is the full lazyq configuration.
type Config struct {
	Input  string      `yaml:"input" mapstructure:"input"`
	Output string      `yaml:"output" mapstructure:"output"`
	Pretty bool        `yaml:"pretty" mapstructure:"pretty"`
	Log    LogConfig   `yaml:"log" mapstructure:"log"`
	Query  QueryConfig `yaml:"query" mapstructure:"query"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Format  string `yaml:"format" mapstructure:"format"`
	Output  string `yaml:"output" mapstructure:"output"`
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
}

// QueryConfig describes one pipeline over the records of the input.
// Stages run in the order where, select, order_by, skip, take, group_by.
type QueryConfig struct {
	Where   []Condition `yaml:"where" mapstructure:"where"`
	Select  []string    `yaml:"select" mapstructure:"select"`
	OrderBy []SortKey   `yaml:"order_by" mapstructure:"order_by"`
	Skip    int         `yaml:"skip" mapstructure:"skip"`
	Take    int         `yaml:"take" mapstructure:"take"` // Unbounded for no limit
	GroupBy []string    `yaml:"group_by" mapstructure:"group_by"`
}

// Condition keeps records whose Field compares to Value under Op.
// Field is a gjson path.
type Condition struct {
	Field string `yaml:"field" mapstructure:"field"`
	Op    string `yaml:"op" mapstructure:"op"`
	Value any    `yaml:"value" mapstructure:"value"`
}

// SortKey orders records by Field.
type SortKey struct {
	Field     string `yaml:"field" mapstructure:"field"`
	Direction string `yaml:"direction" mapstructure:"direction"`
}

// Descending reports whether the key sorts largest first.
func (k SortKey) Descending() bool {
	return k.Direction == "desc"
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = "-"
	}
	if c.Output == "" {
		c.Output = "-"
	}
	c.Log.ApplyDefaults()
	for i := range c.Query.Where {
		if c.Query.Where[i].Op == "" {
			c.Query.Where[i].Op = "=="
		}
	}
	for i := range c.Query.OrderBy {
		switch c.Query.OrderBy[i].Direction {
		case "", "ascending":
			c.Query.OrderBy[i].Direction = "asc"
		case "descending":
			c.Query.OrderBy[i].Direction = "desc"
		}
	}
}

// ApplyDefaults applies default values to logging configuration.
func (c *LogConfig) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Query.Validate()
}

// Validate validates logging configuration.
func (c *LogConfig) Validate() error {
	if !lo.Contains(validLevels, c.Level) {
		return fmt.Errorf("%w: log.level must be one of %v (got: %s)", ErrInvalid, validLevels, c.Level)
	}
	if !lo.Contains(validFormats, c.Format) {
		return fmt.Errorf("%w: log.format must be one of %v (got: %s)", ErrInvalid, validFormats, c.Format)
	}
	if !lo.Contains(validOutputs, c.Output) {
		return fmt.Errorf("%w: log.output must be one of %v (got: %s)", ErrInvalid, validOutputs, c.Output)
	}
	return nil
}

// Validate checks the query stages.
func (c *QueryConfig) Validate() error {
	for i, cond := range c.Where {
		if cond.Field == "" {
			return fmt.Errorf("%w: query.where[%d].field is required", ErrInvalid, i)
		}
		if !lo.Contains(validOps, cond.Op) {
			return fmt.Errorf("%w: query.where[%d].op must be one of %v (got: %s)", ErrInvalid, i, validOps, cond.Op)
		}
		if cond.Op != "exists" && cond.Value == nil {
			return fmt.Errorf("%w: query.where[%d].value is required for op %s", ErrInvalid, i, cond.Op)
		}
	}
	if _, ok := lo.Find(c.Select, func(f string) bool { return f == "" }); ok {
		return fmt.Errorf("%w: query.select contains an empty field", ErrInvalid)
	}
	for i, key := range c.OrderBy {
		if key.Field == "" {
			return fmt.Errorf("%w: query.order_by[%d].field is required", ErrInvalid, i)
		}
		if !lo.Contains(validDirections, key.Direction) {
			return fmt.Errorf("%w: query.order_by[%d].direction must be one of %v (got: %s)", ErrInvalid, i, validDirections, key.Direction)
		}
	}
	if c.Skip < 0 {
		return fmt.Errorf("%w: query.skip must not be negative (got: %d)", ErrInvalid, c.Skip)
	}
	if c.Take < Unbounded {
		return fmt.Errorf("%w: query.take must be %d or more (got: %d)", ErrInvalid, Unbounded, c.Take)
	}
	if len(c.GroupBy) > 2 {
		return fmt.Errorf("%w: query.group_by takes at most 2 fields (got: %d)", ErrInvalid, len(c.GroupBy))
	}
	if dup := lo.FindDuplicates(c.GroupBy); len(dup) > 0 {
		return fmt.Errorf("%w: query.group_by repeats %v", ErrInvalid, dup)
	}
	return nil
}
