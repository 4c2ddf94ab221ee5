package config

type PostgresConfig struct {
	Hostname string `yaml:"host" env:"POSTGRES_HOST"`
	Db       string `yaml:"db" env:"POSTGRES_DB"`
	User     string `yaml:"username" env:"POSTGRES_USER"`
	Pswd     string `yaml:"password" env:"POSTGRES_PASSWORD"`
}

func (s *PostgresConfig) Host() string {
	return s.Hostname
}

func (s *PostgresConfig) Database() string {
	return s.Db
}

func (s *PostgresConfig) Username() string {
	return s.User
}

func (s *PostgresConfig) Password() string {
	return s.Pswd
}

// Enabled reports whether a postgres host is configured.
func (s *PostgresConfig) Enabled() bool {
	return s.Hostname != ""
}
