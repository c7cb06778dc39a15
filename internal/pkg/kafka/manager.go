package kafka

import (
	"Clipstream/internal/api/config"
	"Clipstream/internal/repository"
	"Clipstream/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the Kafka consumer groups and their lifecycles.
type ConsumerManager struct {
	uploadConsumer sarama.ConsumerGroup
	uploadHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	videoRepo repository.VideoRepo,
	followRepo repository.FollowRepo,
	notificationService service.NotificationService,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	uploadConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaUploadConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	uploadHandler := NewUploadsHandler(videoRepo, followRepo, notificationService)

	return &ConsumerManager{
		uploadConsumer: uploadConsumer,
		uploadHandler:  uploadHandler,
	}, nil
}

// Start blocks until the context is cancelled, then closes the consumers.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaUploadConsumer.Topic
		log.Info("upload consumer started", "topic", topic)
		for {
			if err := m.uploadConsumer.Consume(ctx, []string{topic}, m.uploadHandler); err != nil {
				log.Error("error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("kafka manager shutting down...")

	if err := m.uploadConsumer.Close(); err != nil {
		log.Error("failed to close upload consumer", "err", err)
	}

	return nil
}
