package service

import (
	"context"
	"encoding/json"

	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/pkg/logger"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
	"github.com/meeralouise/my-reading-world/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains board events in the background and writes an
// activity trail through the structured logger.
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
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
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
	var payload dto.BoardEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal board event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are never retriable
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.StickerRepository().Count(ctx, specification.ByWorldID{WorldID: payload.WorldId})
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to count world stickers", map[string]interface{}{
			"error":    err.Error(),
			"world_id": payload.WorldId,
		})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Board activity", map[string]interface{}{
		"type":           payload.Type,
		"sticker_id":     payload.StickerId,
		"world_id":       payload.WorldId,
		"world_stickers": count,
	})
	msg.Ack()
}
