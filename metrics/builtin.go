package metrics

import (
	"fmt"

	"github.com/neurofleetx/decision/core/factory"
)

// registry holds the built-in sink factories.
var registry = factory.NewRegistry[DecisionSink]()

func init() {
	must(registry.Register("nop", func(map[string]any) (DecisionSink, error) {
		return NopSink{}, nil
	}))
	must(registry.Register("prometheus", func(map[string]any) (DecisionSink, error) {
		return NewPromSink(nil)
	}))
	must(registry.Register("influx", func(conf map[string]any) (DecisionSink, error) {
		var cfg InfluxConfig
		if err := factory.Decode(conf, &cfg); err != nil {
			return nil, err
		}
		if cfg.URL == "" {
			return nil, fmt.Errorf("influx sink requires a url")
		}
		return NewInfluxSinkWithFallback(cfg), nil
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Build constructs the configured sinks and combines them. No sinks yields a
// NopSink.
func Build(cfg Config) (DecisionSink, error) {
	var sinks []DecisionSink
	for _, mc := range cfg.Sinks {
		s, err := registry.Create(mc)
		if err != nil {
			return nil, fmt.Errorf("build sink %q: %w", mc.Type, err)
		}
		sinks = append(sinks, s)
	}
	switch len(sinks) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
