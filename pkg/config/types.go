package config

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// UnmarshalYAML accepts the same string form as the JSON decoder.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return errInvalidDuration
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}

	*d = Duration(dur)

	return nil
}

// ChartConfig sizes the rendered charts. Width and Height describe the
// plot area after margins.
type ChartConfig struct {
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
	MarginTop    float64 `json:"margin_top" yaml:"margin_top"`
	MarginRight  float64 `json:"margin_right" yaml:"margin_right"`
	MarginBottom float64 `json:"margin_bottom" yaml:"margin_bottom"`
	MarginLeft   float64 `json:"margin_left" yaml:"margin_left"`
}

// ServerConfig represents the configuration for the statusgraph server.
type ServerConfig struct {
	ListenAddr string      `json:"listen_addr" yaml:"listen_addr"`
	DataFile   string      `json:"data_file" yaml:"data_file"`
	Chart      ChartConfig `json:"chart" yaml:"chart"`

	// Durations lists the relative windows offered by the duration
	// navigation controls, e.g. "168h" for one week. An empty selection
	// resets to the full extent.
	Durations []Duration `json:"durations" yaml:"durations"`
}

// Validate checks required server settings.
func (c *ServerConfig) Validate() error {
	if c.ListenAddr == "" {
		return errMissingListenAddr
	}

	if c.DataFile == "" {
		return errMissingDataFile
	}

	return nil
}
