package main

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/777sanket/LinkManager-Backend/dto"
)

const clickConsumerWorkers = 4

// startClickConsumer drains the click queue: every recorded redirect bumps a
// redis hot counter per short code, cheap to read for dashboards without
// touching postgres. The durable analytics rows are already written by the
// recorder before the message is ever published.
func startClickConsumer() error {
	return rabbitmq.Consume(cfg.ClickQueue, handleClickMessage, clickConsumerWorkers)
}

func handleClickMessage(body []byte) error {
	var message dto.ClickMessage
	if err := json.Unmarshal(body, &message); err != nil {
		logger.Error("ClickMessageUnmarshalFailed", zap.Error(err))
		return err
	}

	hot, err := cache.Incr(context.Background(), "stats:"+message.ShortCode)
	if err != nil {
		logger.Warn("HotCounterFailed", zap.String("shortCode", message.ShortCode), zap.Error(err))
		return err
	}

	logger.Info("ClickConsumed",
		zap.String("id", message.ID),
		zap.String("shortCode", message.ShortCode),
		zap.String("deviceType", message.DeviceType),
		zap.Int64("hotClicks", hot))
	return nil
}
