package app

import (
	"strings"

	"github.com/yungbote/propdesk-backend/internal/clients/redis"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

type Clients struct {
	// ChangeBus is nil when REDIS_ADDR is unset.
	ChangeBus redis.ChangeBus
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Info("REDIS_ADDR not set; change feed disabled")
		return out, nil
	}
	bus, err := redis.NewChangeBus(log, redis.Config{Addr: cfg.RedisAddr, Channel: cfg.RedisChannel})
	if err != nil {
		return out, err
	}
	out.ChangeBus = bus
	return out, nil
}

func (c Clients) Close() {
	if c.ChangeBus != nil {
		_ = c.ChangeBus.Close()
	}
}
