package kafka

import (
	"Clipstream/internal/api/config"
	"Clipstream/internal/service"
	"context"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// UploadProducer emits one event per published video. The consumer group
// turns each event into follower notifications.
type UploadProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewUploadProducer(cfg *config.Config) (*UploadProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}
	return &UploadProducer{
		producer: producer,
		topic:    cfg.KafkaUploadConsumer.Topic,
	}, nil
}

func (p *UploadProducer) PublishUpload(_ context.Context, event *service.UploadEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.UploaderID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

func (p *UploadProducer) Close() error {
	return p.producer.Close()
}
