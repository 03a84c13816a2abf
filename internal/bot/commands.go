package bot

import (
	"errors"

	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
	tghelpers "github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/helpers"
)

func (a *App) onStart(c tele.Context) error {
	return tghelpers.SendMD(c, welcomeMessage, mainMenuMarkup())
}

func (a *App) onHelp(c tele.Context) error {
	return tghelpers.SendMD(c, helpMessage)
}

func (a *App) onCatalog(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	categories, err := a.catalog.Categories(ctx, true)
	if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
		return err
	}
	if len(categories) == 0 {
		return tghelpers.SendText(c, msgNoCategories)
	}

	text, markup := catalogView(categories)
	return tghelpers.SendMD(c, text, markup)
}

func (a *App) onCart(c tele.Context) error {
	return a.showCart(c)
}

// onAdmin is wrapped by the admin-only middleware; by the time it runs the
// sender is already on the allowlist.
func (a *App) onAdmin(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "service.stats", "admin.panel",
		slog.Int64("user_id", c.Sender().ID),
	)
	text, markup := adminPanelView()
	return tghelpers.SendMD(c, text, markup)
}
