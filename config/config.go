package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Dynamo   DynamoConfig
	Checkout CheckoutConfig
	WhatsApp WhatsAppConfig
}

type ServerConfig struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	HTTPPort string `envconfig:"HTTP_PORT" default:":8080"`
}

type LoggerConfig struct {
	Level             string `envconfig:"LOGGER_LEVEL" default:"debug"`
	Encoding          string `envconfig:"LOGGER_ENCODING" default:"console"`
	DisableCaller     bool   `envconfig:"LOGGER_DISABLE_CALLER" default:"false"`
	DisableStacktrace bool   `envconfig:"LOGGER_DISABLE_STACKTRACE" default:"true"`
}

type StorageConfig struct {
	Dir string `envconfig:"STORAGE_DIR" default:"./data"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC_ORDERS" default:"orders.events"`
}

type ElasticsearchConfig struct {
	Enabled   bool     `envconfig:"ELASTICSEARCH_ENABLED" default:"false"`
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" default:"http://localhost:9200"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME" default:""`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD" default:""`
}

type DynamoConfig struct {
	Enabled   bool   `envconfig:"DYNAMO_ENABLED" default:"false"`
	Region    string `envconfig:"AWS_REGION" default:"ap-south-1"`
	TableName string `envconfig:"ORDER_TABLE_NAME" default:"orders"`
}

type CheckoutConfig struct {
	FreeDeliveryAbove     float64 `envconfig:"CHECKOUT_FREE_DELIVERY_ABOVE" default:"500"`
	DeliveryFee           float64 `envconfig:"CHECKOUT_DELIVERY_FEE" default:"50"`
	DefaultDeliveryEst    string  `envconfig:"CHECKOUT_DEFAULT_DELIVERY_ESTIMATE" default:"7 days"`
	ReconcileTierDiscount bool    `envconfig:"CHECKOUT_RECONCILE_TIER_DISCOUNT" default:"false"`
}

type WhatsAppConfig struct {
	AdminNumber string `envconfig:"WHATSAPP_ADMIN_NUMBER" default:"919876543210"`
}

func LoadEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
