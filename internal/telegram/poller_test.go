package telegram

import (
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/config"
)

func TestBuildPollerWebhook(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telegram.RunMode = config.RunModeWebhook
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	cfg.Webhook.URL = "https://bot.example.com/hook"

	p := BuildPoller(cfg)
	wh, ok := p.(*tele.Webhook)
	if !ok {
		t.Fatalf("expected *tele.Webhook, got %T", p)
	}
	if wh.Listen != "0.0.0.0:8443" {
		t.Fatalf("unexpected listen address: %q", wh.Listen)
	}
	if wh.Endpoint.PublicURL != "https://bot.example.com/hook" {
		t.Fatalf("unexpected public url: %q", wh.Endpoint.PublicURL)
	}
}

func TestBuildPollerLongPollDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telegram.RunMode = config.RunModeLongpoll

	p := BuildPoller(cfg)
	lp, ok := p.(*tele.LongPoller)
	if !ok {
		t.Fatalf("expected *tele.LongPoller, got %T", p)
	}
	if lp.Timeout != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", lp.Timeout)
	}
}

func TestBuildPollerLongPollTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telegram.RunMode = config.RunModeLongpoll
	cfg.Telegram.LongPollTimeoutSeconds = 25

	lp, ok := BuildPoller(cfg).(*tele.LongPoller)
	if !ok {
		t.Fatal("expected *tele.LongPoller")
	}
	if lp.Timeout != 25*time.Second {
		t.Fatalf("unexpected timeout: %v", lp.Timeout)
	}
}
