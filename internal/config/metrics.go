package config

type MetricsConfig struct {
	Address string `yaml:"address" env:"METRICS_ADDRESS"`
}

func (s *MetricsConfig) ListenAddress() string {
	return s.Address
}

type TracingConfig struct {
	On      bool    `yaml:"enabled" env:"TRACING_ENABLED"`
	Service string  `yaml:"service-name" env:"TRACING_SERVICE_NAME"`
	Param   float64 `yaml:"sampler-param" env:"TRACING_SAMPLER_PARAM"`
}

func (s *TracingConfig) Enabled() bool {
	return s.On
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

// SamplerParam is the probability a trace is sampled.
func (s *TracingConfig) SamplerParam() float64 {
	return s.Param
}
