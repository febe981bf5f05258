package service

import (
	"context"
	"encoding/json"
	"time"

	"mentora-be/internal/dto"
	"mentora-be/internal/entity"
	"mentora-be/internal/pkg/logger"
	"mentora-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the unanswered-query topic and persists each
// query for admin review. Runs for the lifetime of the process.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.UnansweredQueryMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Ack malformed messages to avoid an infinite redelivery loop.
		cs.logger.Error("CONSUMER", "failed to unmarshal unanswered query message", map[string]interface{}{
			"error": err,
		})
		msg.Ack()
		return
	}

	askedAt, err := time.Parse(time.RFC3339, payload.AskedAt)
	if err != nil {
		askedAt = time.Now().UTC()
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	query := &entity.UnansweredQuery{
		Id:        uuid.New(),
		Query:     payload.Query,
		AskedAt:   askedAt,
		CreatedAt: time.Now(),
	}
	if err := uow.UnansweredQueryRepository().Create(ctx, query); err != nil {
		cs.logger.Error("CONSUMER", "failed to persist unanswered query", map[string]interface{}{
			"error": err,
			"query": payload.Query,
		})
		msg.Nack()
		return
	}

	cs.logger.Info("CONSUMER", "unanswered query recorded", map[string]interface{}{
		"query": payload.Query,
	})
	msg.Ack()
}
