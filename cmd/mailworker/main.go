package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/rosalinebakery/store_service/config"
	"github.com/rosalinebakery/store_service/infra/queue"
	"github.com/rosalinebakery/store_service/internal/mailer"
)

func main() {
	cfg := config.LoadConfig()

	mailSvc := mailer.NewMailService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.MailFrom,
	)
	handler := mailer.NewMailHandler(mailSvc)

	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("mail worker listening on topic", cfg.KafkaTopic)
	consumer.Listen(ctx)
	log.Println("mail worker stopped")
}
