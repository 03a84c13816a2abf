package middleware

import (
	"runtime/debug"

	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
)

const msgHandlerPanic = "❌ Ocorreu um erro. Tente novamente."

// RecoverMiddleware keeps a panicking handler from taking the bot down.
// A keyboard tap still gets an answer so the client spinner does not hang.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get("rid").(string)
				logger.TG.Error("panic recovered",
					slog.String("event", "tg.panic"),
					slog.String("rid", rid),
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
				if c.Callback() != nil {
					_ = c.Respond(&tele.CallbackResponse{Text: msgHandlerPanic})
				}
			}
		}()
		return next(c)
	}
}
