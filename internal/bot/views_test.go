package bot

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

func TestPriceFormatting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.5", "€2.50"},
		{"0", "€0.00"},
		{"1999.999", "€2000.00"},
	}
	for _, tt := range tests {
		if got := price(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Fatalf("price(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortName(t *testing.T) {
	if got := shortName("Cola", 15); got != "Cola" {
		t.Fatalf("short names must pass through, got %q", got)
	}
	if got := shortName("Caixa de Chocolates Premium", 15); got != "Caixa de Chocol..." {
		t.Fatalf("got %q", got)
	}
	// Rune-aware: must not slice through multi-byte characters.
	if got := shortName("ééééé", 3); got != "ééé..." {
		t.Fatalf("got %q", got)
	}
}

func TestCartViewSkipsUnresolvedLines(t *testing.T) {
	snapshot := map[string]int{"p1": 2, "deleted": 1}
	products := map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Cola", Price: decimal.RequireFromString("2.50")},
	}

	text, markup := cartView(snapshot, products)
	if strings.Contains(text, "deleted") {
		t.Fatalf("unresolved line leaked into view: %q", text)
	}
	if !strings.Contains(text, "*Total: €5.00*") {
		t.Fatalf("total must exclude unresolved lines: %q", text)
	}
	// One remove row plus clear, checkout, and continue rows.
	if got := len(markup.InlineKeyboard); got != 4 {
		t.Fatalf("keyboard rows = %d, want 4", got)
	}
}

func TestCartViewStableOrdering(t *testing.T) {
	snapshot := map[string]int{"b": 1, "a": 1, "c": 1}
	products := map[string]catalog.Product{
		"a": {ID: "a", Name: "AA", Price: decimal.New(1, 0)},
		"b": {ID: "b", Name: "BB", Price: decimal.New(1, 0)},
		"c": {ID: "c", Name: "CC", Price: decimal.New(1, 0)},
	}
	text, _ := cartView(snapshot, products)
	if !(strings.Index(text, "AA") < strings.Index(text, "BB") &&
		strings.Index(text, "BB") < strings.Index(text, "CC")) {
		t.Fatalf("lines not ordered by product id: %q", text)
	}
}

func TestProductListView(t *testing.T) {
	cat := catalog.Category{ID: "c1", Name: "Bebidas"}
	products := []catalog.Product{
		{ID: "p1", Name: "Cola", Price: decimal.RequireFromString("2.50"), Stock: 3, Description: "gelada"},
		{ID: "p2", Name: "Água", Price: decimal.RequireFromString("1.00"), Stock: 0},
	}

	text, markup := productListView(cat, products)
	if !strings.Contains(text, "*📦 Bebidas*") {
		t.Fatalf("missing header with default emoji: %q", text)
	}
	if !strings.Contains(text, "💰 €2.50 | ✅ 3 un.") {
		t.Fatalf("missing stock line: %q", text)
	}
	if !strings.Contains(text, "💰 €1.00 | ❌ Esgotado") {
		t.Fatalf("missing sold-out line: %q", text)
	}
	if !strings.Contains(text, "📝 gelada") {
		t.Fatalf("missing description: %q", text)
	}
	// One add row per product plus the cart/catalog navigation row.
	if got := len(markup.InlineKeyboard); got != 3 {
		t.Fatalf("keyboard rows = %d, want 3", got)
	}
}

func TestStatsView(t *testing.T) {
	text, _ := statsView(catalog.DashboardStats{
		TotalProducts:   12,
		TotalCategories: 3,
		TotalOrders:     40,
		TotalRevenue:    decimal.RequireFromString("199.5"),
		LowStockItems:   2,
		PendingOrders:   5,
	})
	for _, want := range []string{
		"📦 Produtos: 12",
		"🛍️ Categorias: 3",
		"📝 Pedidos: 40",
		"💰 Receita: €199.50",
		"⚠️ Stock Baixo: 2",
		"⏳ Pendentes: 5",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("stats view missing %q: %q", want, text)
		}
	}
}

func TestWebPanelMessage(t *testing.T) {
	got := webPanelMessage("📦", "produtos", "http://localhost:3000")
	if !strings.Contains(got, "http://localhost:3000") || !strings.Contains(got, "produtos") {
		t.Fatalf("got %q", got)
	}
}
