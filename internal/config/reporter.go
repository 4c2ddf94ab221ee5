package config

type ReporterConfig struct {
	Address string `yaml:"acceptor-address" env:"REPORTER_ACCEPTOR_ADDRESS"`
}

// AcceptorAddress is where the bot serves the report acceptor and where the
// reporter sends finished reports.
func (s *ReporterConfig) AcceptorAddress() string {
	return s.Address
}
