package config

type StorageConfig struct {
	Kind      string `yaml:"backend" env:"LEDGER_STORAGE_BACKEND"`
	Directory string `yaml:"dir" env:"LEDGER_STORAGE_DIR"`
	GCSBucket string `yaml:"bucket" env:"LEDGER_STORAGE_BUCKET"`
	GCSPrefix string `yaml:"prefix" env:"LEDGER_STORAGE_PREFIX"`
}

// Backend is one of file, memory, postgres or gcs.
func (s *StorageConfig) Backend() string {
	return s.Kind
}

func (s *StorageConfig) Dir() string {
	return s.Directory
}

func (s *StorageConfig) Bucket() string {
	return s.GCSBucket
}

func (s *StorageConfig) Prefix() string {
	return s.GCSPrefix
}
