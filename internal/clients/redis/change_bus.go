package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

const DefaultChannel = "propdesk.changes"

// ChangeBus fans committed writes out over Redis pub/sub.
type ChangeBus interface {
	Publish(ctx context.Context, ev entity.ChangeEvent) error
	StartForwarder(ctx context.Context, onMsg func(ev entity.ChangeEvent)) error
	Close() error
}

type Config struct {
	Addr    string
	Channel string
}

type changeBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewChangeBus connects to cfg.Addr and pings it before returning.
func NewChangeBus(log *logger.Logger, cfg Config) (ChangeBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newChangeBus(log, rdb, cfg.Channel), nil
}

func newChangeBus(log *logger.Logger, rdb *goredis.Client, channel string) *changeBus {
	ch := strings.TrimSpace(channel)
	if ch == "" {
		ch = DefaultChannel
	}
	return &changeBus{
		log:     log.With("service", "RedisChangeBus"),
		rdb:     rdb,
		channel: ch,
	}
}

func (b *changeBus) Publish(ctx context.Context, ev entity.ChangeEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis change bus not initialized")
	}
	raw, err := encodeChange(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

func (b *changeBus) StartForwarder(ctx context.Context, onMsg func(ev entity.ChangeEvent)) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis change bus not initialized")
	}
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				ev, err := decodeChange(m.Payload)
				if err != nil {
					b.log.Warn("bad redis change payload", "error", err)
					continue
				}
				onMsg(ev)
			}
		}
	}()

	return nil
}

func (b *changeBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

func encodeChange(ev entity.ChangeEvent) ([]byte, error) {
	return json.Marshal(ev)
}

func decodeChange(payload string) (entity.ChangeEvent, error) {
	var ev entity.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return entity.ChangeEvent{}, err
	}
	if ev.Kind == "" || ev.Op == "" {
		return entity.ChangeEvent{}, fmt.Errorf("change event missing kind or op")
	}
	return ev, nil
}
