package bot

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/cart"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/callbacks"
	tghelpers "github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/helpers"
)

func (a *App) cbMainMenu(c tele.Context) error {
	if err := tghelpers.EditMD(c, msgMainMenu, mainMenuMarkup()); err != nil {
		return err
	}
	return c.Respond()
}

func (a *App) cbViewCatalog(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	categories, err := a.catalog.Categories(ctx, true)
	if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
		return err
	}
	if len(categories) == 0 {
		return tghelpers.Toast(c, msgNoCategoriesToast)
	}

	text, markup := catalogView(categories)
	if err := tghelpers.EditMD(c, text, markup); err != nil {
		return err
	}
	return c.Respond()
}

func (a *App) cbCategory(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	categoryID := callbacks.Payload(c)

	categories, err := a.catalog.Categories(ctx, true)
	if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
		return err
	}
	cat, ok := catalog.FindCategory(categories, categoryID)
	if !ok {
		a.logMiss(ctx, "category", categoryID)
		return tghelpers.Toast(c, msgCategoryNotFound)
	}

	products, err := a.catalog.Products(ctx, catalog.ProductFilter{CategoryID: categoryID, ActiveOnly: true})
	if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
		return err
	}
	if len(products) == 0 {
		msg := fmt.Sprintf("❌ Nenhum produto disponível na categoria *%s*", cat.Name)
		if err := tghelpers.EditMD(c, msg); err != nil {
			return err
		}
		return c.Respond()
	}

	text, markup := productListView(cat, products)
	if err := tghelpers.EditMD(c, text, markup); err != nil {
		return err
	}
	return c.Respond()
}

func (a *App) cbAdd(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	productID := callbacks.Payload(c)
	userID := c.Sender().ID

	// Stock is validated against a snapshot fetched right now, not against
	// whatever the product list screen showed when it was rendered.
	products, err := a.catalog.Products(ctx, catalog.ProductFilter{ActiveOnly: true})
	if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
		return err
	}
	p, ok := catalog.FindProduct(products, productID)
	if !ok {
		a.logMiss(ctx, "product", productID)
		return tghelpers.Toast(c, msgProductNotFound)
	}

	qty, addErr := a.carts.Add(userID, productID, p.Stock)
	if addErr != nil {
		a.logCartReject(ctx, userID, productID, qty, addErr)
		switch {
		case errors.Is(addErr, cart.ErrOutOfStock):
			return tghelpers.Toast(c, msgProductSoldOut)
		case errors.Is(addErr, cart.ErrStockLimit):
			return tghelpers.Toast(c, msgStockLimit)
		}
		return addErr
	}

	logger.Info(ctx, "service.cart", "cart.add",
		slog.Int64("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("qty", qty),
		slog.Int("stock", p.Stock),
	)
	return tghelpers.Toast(c, "✅ "+shortName(p.Name, 20)+" adicionado!")
}

func (a *App) cbViewCart(c tele.Context) error {
	if err := a.showCart(c); err != nil {
		return err
	}
	return c.Respond()
}

func (a *App) cbRemove(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	productID := callbacks.Payload(c)
	userID := c.Sender().ID

	a.carts.RemoveLine(userID, productID)
	logger.Info(ctx, "service.cart", "cart.remove",
		slog.Int64("user_id", userID),
		slog.String("product_id", productID),
	)

	if err := a.showCart(c); err != nil {
		return err
	}
	return tghelpers.Toast(c, msgItemRemoved)
}

func (a *App) cbClearCart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	a.carts.Clear(userID)
	logger.Info(ctx, "service.cart", "cart.clear",
		slog.Int64("user_id", userID),
	)

	text, markup := clearedCartView()
	if err := tghelpers.EditMD(c, text, markup); err != nil {
		return err
	}
	return tghelpers.Toast(c, msgCartCleared)
}

func (a *App) cbCheckout(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	snapshot := a.carts.Snapshot(userID)
	if len(snapshot) == 0 {
		return tghelpers.Toast(c, msgCartEmpty)
	}

	idx := a.productIndex(ctx)
	text, markup := checkoutView(snapshot, idx)
	if err := tghelpers.EditMD(c, text, markup); err != nil {
		return err
	}
	return c.Respond()
}

// cbConfirmOrder hands the order off to manual processing; no order entity is
// created on the bot side.
func (a *App) cbConfirmOrder(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "service.cart", "checkout.handoff",
		slog.Int64("user_id", c.Sender().ID),
		slog.Int("lines", a.carts.Len(c.Sender().ID)),
	)

	if err := tghelpers.EditMD(c, confirmOrderMessage); err != nil {
		return err
	}
	return c.Respond()
}

// cbAdminAction re-checks the allowlist on every invocation; the /admin
// command gate does not carry over to callbacks.
func (a *App) cbAdminAction(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	user := c.Sender()
	if user == nil || !a.admins.Allowed(user.ID) {
		return tghelpers.Toast(c, msgAccessDenied)
	}

	action := callbacks.Payload(c)
	switch action {
	case adminActionStats:
		if err := a.showStats(c, ctx); err != nil {
			return err
		}
	case adminActionProducts:
		if err := tghelpers.SendText(c, webPanelMessage("📦", "produtos", a.panelURL())); err != nil {
			return err
		}
	case adminActionCategories:
		if err := tghelpers.SendText(c, webPanelMessage("🛍️", "categorias", a.panelURL())); err != nil {
			return err
		}
	case adminActionOrders:
		if err := tghelpers.SendText(c, webPanelMessage("📝", "pedidos", a.panelURL())); err != nil {
			return err
		}
	}
	return c.Respond()
}

func (a *App) showStats(c tele.Context, ctx context.Context) error {
	stats, err := a.catalog.Stats(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			return tghelpers.SendText(c, msgStatsFailed)
		}
		return err
	}

	text, markup := statsView(stats)
	return tghelpers.SendMD(c, text, markup)
}

// showCart renders the cart against a fresh catalog snapshot. When the catalog
// is unavailable every line fails to resolve, so the view degrades to an empty
// listing with a zero total instead of erroring.
func (a *App) showCart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	snapshot := a.carts.Snapshot(userID)
	if len(snapshot) == 0 {
		text, markup := emptyCartView()
		return tghelpers.EditOrSendMD(c, text, markup)
	}

	idx := a.productIndex(ctx)
	text, markup := cartView(snapshot, idx)
	return tghelpers.EditOrSendMD(c, text, markup)
}

func (a *App) productIndex(ctx context.Context) map[string]catalog.Product {
	products, err := a.catalog.Products(ctx, catalog.ProductFilter{ActiveOnly: true})
	if err != nil {
		return map[string]catalog.Product{}
	}
	return catalog.ProductIndex(products)
}

func (a *App) logMiss(ctx context.Context, kind, id string) {
	logger.Warn(ctx, "service.catalog", "lookup.miss",
		slog.String("kind", kind),
		slog.String("id", logger.SanitizeLimit(id, 64)),
		slog.String("err", catalog.ErrNotFound.Error()),
	)
}

func (a *App) logCartReject(ctx context.Context, userID int64, productID string, qty int, err error) {
	attrs := []slog.Attr{
		slog.Int64("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("qty", qty),
	}
	var cartErr *cart.Error
	if errors.As(err, &cartErr) {
		attrs = append(attrs, slog.String("code", cartErr.Code()))
	}
	logger.Info(ctx, "service.cart", "cart.add.rejected", attrs...)
}
