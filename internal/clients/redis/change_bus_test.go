package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

func TestChangeEncodingRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := entity.ChangeEvent{Kind: "Tenant", Op: entity.OpPayment, ID: 7, At: at}
	raw, err := encodeChange(ev)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(raw), `"op":"payment"`) || !strings.Contains(string(raw), `"kind":"Tenant"`) {
		t.Fatalf("unexpected wire form %s", raw)
	}
	got, err := decodeChange(string(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind != ev.Kind || got.Op != ev.Op || got.ID != ev.ID || !got.At.Equal(at) {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestDecodeChangeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "{", `{"id":3}`} {
		if _, err := decodeChange(in); err == nil {
			t.Fatalf("decodeChange(%q): expected error", in)
		}
	}
}

func TestNewChangeBusRequiresAddr(t *testing.T) {
	if _, err := NewChangeBus(logger.Nop(), Config{}); err == nil {
		t.Fatalf("expected error for empty addr")
	}
	if _, err := NewChangeBus(nil, Config{Addr: "127.0.0.1:6379"}); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

func TestPublishSurfacesConnectionErrors(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	b := newChangeBus(logger.Nop(), rdb, "")
	defer b.Close()
	if b.channel != DefaultChannel {
		t.Fatalf("channel = %q", b.channel)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := b.Publish(ctx, entity.ChangeEvent{Kind: "Owner", Op: entity.OpCreate, ID: 1}); err == nil {
		t.Fatalf("expected publish to fail without a server")
	}
}
