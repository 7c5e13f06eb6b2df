package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort         string
	DatabaseDSN        string
	AccessSecret       string
	TokenExpireMinutes int

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	BaseURL string
	Env     string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	expireMinutes, _ := strconv.Atoi(os.Getenv("TOKEN_EXPIRE_MINUTES"))

	return Config{
		ServerPort:         os.Getenv("SERVER_PORT"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		AccessSecret:       os.Getenv("ACCESS_SECRET"),
		TokenExpireMinutes: expireMinutes,

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID:  os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: os.Getenv("MAIL_FROM"),

		BaseURL: os.Getenv("BASE_URL"),
		Env:     os.Getenv("ENV"),
	}
}
