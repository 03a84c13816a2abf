// Package bot implements the Telegram storefront: catalog browsing, the
// in-memory cart, checkout handoff, and the admin panel views.
package bot

import (
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/admin"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/cart"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/config"
	tg "github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram"
	tghelpers "github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/helpers"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/middleware"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/router"
)

// Callback keys. Category, product, and admin-action callbacks carry their
// target identifier in the payload part of the callback data.
const (
	cbMainMenu     = "main_menu"
	cbViewCatalog  = "view_catalog"
	cbViewCart     = "view_cart"
	cbCategory     = "cat"
	cbAdd          = "add"
	cbRemove       = "remove"
	cbClearCart    = "clear_cart"
	cbCheckout     = "checkout"
	cbConfirmOrder = "confirm_order"
	cbAdmin        = "admin"
)

const (
	adminActionStats      = "stats"
	adminActionProducts   = "products"
	adminActionCategories = "categories"
	adminActionOrders     = "orders"
)

// App wires the storefront services into the Telegram runtime.
type App struct {
	cfg     *config.Config
	catalog *catalog.Client
	carts   *cart.Store
	admins  admin.Allowlist
}

// New assembles the storefront application from configuration.
func New(cfg *config.Config) *App {
	return &App{
		cfg:     cfg,
		catalog: catalog.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		carts:   cart.NewStore(),
		admins:  admin.NewAllowlist(cfg.Telegram.AdminIDs),
	}
}

// Registry builds the command and callback registry for the storefront.
func (a *App) Registry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", tg.Command{
		Handler:     a.onStart,
		Description: "Iniciar o bot",
	})
	reg.RegisterCommand("/catalogo", tg.Command{
		Handler:     a.onCatalog,
		Description: "Ver catálogo de produtos",
	})
	reg.RegisterCommand("/carrinho", tg.Command{
		Handler:     a.onCart,
		Description: "Ver carrinho de compras",
	})
	reg.RegisterCommand("/ajuda", tg.Command{
		Handler:     a.onHelp,
		Description: "Lista de comandos",
	})
	reg.RegisterCommand("/admin", tg.Command{
		Handler:     a.onAdmin,
		Description: "Painel administrativo",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbMainMenu, a.cbMainMenu)
	_ = reg.RegisterCallback(cbViewCatalog, a.cbViewCatalog)
	_ = reg.RegisterCallback(cbViewCart, a.cbViewCart)
	_ = reg.RegisterCallback(cbCategory, a.cbCategory)
	_ = reg.RegisterCallback(cbAdd, a.cbAdd)
	_ = reg.RegisterCallback(cbRemove, a.cbRemove)
	_ = reg.RegisterCallback(cbClearCart, a.cbClearCart)
	_ = reg.RegisterCallback(cbCheckout, a.cbCheckout)
	_ = reg.RegisterCallback(cbConfirmOrder, a.cbConfirmOrder)
	_ = reg.RegisterCallback(cbAdmin, a.cbAdminAction)

	return reg
}

// TelegramRunOptions assembles the runtime options for tg.RunTelegram.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := a.Registry()

	adminOpts := middleware.AdminOptions{
		Allowlist: a.admins,
		OnReject: func(c tele.Context) error {
			return tghelpers.SendText(c, msgAdminOnly)
		},
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{Admin: adminOpts})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	onLimited := func(c tele.Context) error {
		if c.Callback() != nil {
			return tghelpers.Toast(c, msgSlowDown)
		}
		return nil
	}

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, onLimited),
		Routes:      routes,
	}, nil
}

// panelURL derives the web admin panel address from the API base URL.
func (a *App) panelURL() string {
	return strings.TrimSuffix(a.cfg.API.BaseURL, "/api")
}
