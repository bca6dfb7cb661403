package livequery

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"kiadmin_backend/internals/helpers/logger"
)

// RedisBus meneruskan notifikasi antar instance lewat Redis pub/sub,
// lalu menyebarkannya ke subscriber lokal via MemoryBus.
type RedisBus struct {
	local   *MemoryBus
	rdb     *goredis.Client
	channel string
	log     *logger.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewRedisBus(rdb *goredis.Client, channel string, log *logger.Logger) (*RedisBus, error) {
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if channel == "" {
		channel = "kiadmin:changes"
	}
	if log == nil {
		log = logger.L()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBus{
		local:   NewMemoryBus(),
		rdb:     rdb,
		channel: channel,
		log:     log.With("service", "RedisLiveQueryBus"),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	sub := rdb.Subscribe(ctx, channel)
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if _, err := sub.Receive(pingCtx); err != nil {
		cancel()
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}
	go b.forward(ctx, sub)
	return b, nil
}

func (b *RedisBus) forward(ctx context.Context, sub *goredis.PubSub) {
	defer close(b.done)
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.local.fanOut(msg.Payload)
		}
	}
}

func (b *RedisBus) Publish(ctx context.Context, topic string) error {
	if err := b.rdb.Publish(ctx, b.channel, topic).Err(); err != nil {
		b.log.Warn("publish gagal, kirim lokal saja", "topic", topic, "err", err)
		b.local.fanOut(topic)
		return err
	}
	return nil
}

func (b *RedisBus) Subscribe(topic string) (<-chan struct{}, func()) {
	return b.local.Subscribe(topic)
}

func (b *RedisBus) Close() error {
	b.cancel()
	<-b.done
	return b.local.Close()
}
