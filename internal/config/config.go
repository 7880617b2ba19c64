package config

import (
	"github.com/Artexxx/HR-Console/library/pg"
	"github.com/Artexxx/HR-Console/library/yamlenv"
)

type Config struct {
	Postgres pg.PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	UserAPI  ApiConfig         `yaml:"userAPI"`
	Supabase SupabaseConfig    `yaml:"supabase"`
}

type KafkaConfig struct {
	// Пустой bootstrap — события не публикуются, консоль работает без Kafka.
	Bootstrap        *yamlenv.Env[string] `yaml:"bootstrap"`
	ProducerClientID *yamlenv.Env[string] `yaml:"producer_client_id"`
	Topics           struct {
		Employees *yamlenv.Env[string] `yaml:"employees"`
		History   *yamlenv.Env[string] `yaml:"history"`
	} `yaml:"topics"`
}

type ApiConfig struct {
	Port *yamlenv.Env[int] `yaml:"port"`
}

type SupabaseConfig struct {
	URL *yamlenv.Env[string] `yaml:"url"`
	Key *yamlenv.Env[string] `yaml:"key"`
}
