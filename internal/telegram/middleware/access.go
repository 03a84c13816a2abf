package middleware

import (
	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/admin"
)

// AdminOptions defines how admin-only checks should behave.
type AdminOptions struct {
	Allowlist admin.Allowlist
	OnReject  tele.HandlerFunc
}

// AdminOnlyMiddleware ensures that only allowlisted users can invoke downstream
// handlers. The check is stateless and runs on every invocation.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || !opts.Allowlist.Allowed(user.ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
