package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	Minio    Minio
	RabbitMQ RabbitMQ
	Logger   Logger
}

type MongoDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Minio struct {
	Host          string
	Port          string
	Username      string
	Password      string
	BucketName    string
	UseSSL        bool
	PublicBaseURL string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App  App
	JWT  JWT
	Push Push
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Push struct {
	QueueName          string
	BatchesPerSecond   int
	PublishTimeoutSecs int
}

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	RequestLogger  *logrus.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
