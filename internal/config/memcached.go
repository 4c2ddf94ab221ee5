package config

import "time"

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts" env:"MEMCACHED_HOSTS" envSeparator:","`
	TTL       int32    `yaml:"ttl-seconds" env:"MEMCACHED_TTL_SECONDS"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) Expiration() time.Duration {
	return time.Duration(s.TTL) * time.Second
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}
