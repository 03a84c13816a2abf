package middleware

import (
	"errors"
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

// panicContext implements the slice of tele.Context RecoverMiddleware touches.
type panicContext struct {
	tele.Context
	callback *tele.Callback
	responds []*tele.CallbackResponse
}

func (f *panicContext) Get(string) any           { return nil }
func (f *panicContext) Callback() *tele.Callback { return f.callback }
func (f *panicContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responds = append(f.responds, resp...)
	return nil
}

func TestRecoverSwallowsPanic(t *testing.T) {
	h := RecoverMiddleware(func(tele.Context) error {
		panic("boom")
	})

	if err := h(&panicContext{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecoverAnswersPendingCallback(t *testing.T) {
	c := &panicContext{callback: &tele.Callback{ID: "q1"}}
	h := RecoverMiddleware(func(tele.Context) error {
		panic("boom")
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.responds) != 1 {
		t.Fatalf("expected one callback answer, got %d", len(c.responds))
	}
	if c.responds[0].Text == "" {
		t.Fatal("expected a user-visible error text")
	}
}

func TestRecoverPassesThroughErrors(t *testing.T) {
	sentinel := errors.New("handler failed")
	c := &panicContext{callback: &tele.Callback{ID: "q1"}}
	h := RecoverMiddleware(func(tele.Context) error {
		return sentinel
	})

	if err := h(c); !errors.Is(err, sentinel) {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.responds) != 0 {
		t.Fatal("plain errors must not trigger the panic answer")
	}
}
