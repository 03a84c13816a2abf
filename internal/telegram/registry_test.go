package telegram

import (
	"os"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/config"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(config.LoggingConfig{Level: "error"})
	os.Exit(m.Run())
}

func noopHandler(c tele.Context) error { return nil }

func TestRegisterCommand(t *testing.T) {
	r := NewRegistry()

	r.RegisterCommand("/start", Command{Handler: noopHandler, Description: "start"})
	r.RegisterCommand("/admin", Command{Handler: noopHandler, Description: "admin", AdminOnly: true, Hidden: true})

	// Rejected registrations: no slash, no description, nil handler, duplicate.
	r.RegisterCommand("start", Command{Handler: noopHandler, Description: "x"})
	r.RegisterCommand("/nodesc", Command{Handler: noopHandler})
	r.RegisterCommand("/nohandler", Command{Description: "x"})
	r.RegisterCommand("/start", Command{Handler: noopHandler, Description: "again"})

	if len(r.Commands()) != 2 {
		t.Fatalf("commands = %d, want 2", len(r.Commands()))
	}
	if r.Commands()["/start"].Description != "start" {
		t.Fatalf("duplicate registration overwrote the original")
	}
}

func TestListCommandsVisibleOnly(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommand("/start", Command{Handler: noopHandler, Description: "start"})
	r.RegisterCommand("/help", Command{Handler: noopHandler, Description: "help"})
	r.RegisterCommand("/admin", Command{Handler: noopHandler, Description: "admin", AdminOnly: true, Hidden: true})

	visible := r.ListCommands(true)
	if len(visible) != 2 {
		t.Fatalf("visible = %d, want 2", len(visible))
	}
	// Sorted by command text.
	if visible[0].Text != "/help" || visible[1].Text != "/start" {
		t.Fatalf("order wrong: %+v", visible)
	}

	all := r.ListCommands(false)
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
}

func TestCallbackRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.RegisterCallback("add", noopHandler); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.RegisterCallback("add", noopHandler); err == nil {
		t.Fatalf("duplicate key accepted")
	}
	if err := r.RegisterCallback("", noopHandler); err == nil {
		t.Fatalf("empty key accepted")
	}
	if err := r.RegisterCallback("nil", nil); err == nil {
		t.Fatalf("nil handler accepted")
	}

	if _, ok := r.GetCallback("add"); !ok {
		t.Fatalf("registered callback not found")
	}
	if _, ok := r.GetCallback("ghost"); ok {
		t.Fatalf("unknown callback found")
	}

	if keys := r.ListCallbacks(); len(keys) != 1 || keys[0] != "add" {
		t.Fatalf("keys = %v", keys)
	}

	if r.CallbackNotFound() == nil {
		t.Fatalf("default not-found handler missing")
	}
}
