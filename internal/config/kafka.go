package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	Consumer   string   `yaml:"consumer-group" env:"KAFKA_CONSUMER_GROUP"`
	RepTopic   string   `yaml:"reports-topic" env:"KAFKA_REPORTS_TOPIC"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) ReportsTopic() string {
	return s.RepTopic
}

// Enabled reports whether reports go through the async pipeline.
func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
