package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v4"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/telegram/keyboard"
)

const welcomeMessage = `🎉 Bem-vindo ao nosso bot de compras!

Aqui você encontrará os melhores produtos e ofertas.

*Nossas Funcionalidades:*
🛒 Catálogo completo
🛍️ Carrinho de compras
📦 Acompanhamento de pedidos
🔔 Notificações de ofertas

Para começar, selecione uma categoria abaixo ou use os comandos:
• /catalogo - Ver produtos
• /carrinho - Ver seu carrinho
• /ajuda - Lista de comandos

*Administradores:*
• /admin - Painel administrativo`

const helpMessage = `*📚 Lista de Comandos*

*Comandos Gerais:*
/start - Iniciar o bot
/catalogo - Ver catálogo de produtos
/carrinho - Ver carrinho de compras
/ajuda - Mostrar esta mensagem

*Comandos de Administrador:*
/admin - Painel administrativo (apenas admins)

Para navegar, você também pode usar os botões inline.`

const confirmOrderMessage = `📝 *Criar Pedido*

Para finalizar seu pedido, por favor envie:
• Seu nome completo
• Endereço de entrega
• Método de pagamento preferido

Aguardando sua resposta...`

const (
	msgMainMenu          = "🏠 *Menu Principal*\n\nEscolha uma opção:"
	msgNoCategories      = "❌ Nenhuma categoria disponível no momento."
	msgNoCategoriesToast = "❌ Nenhuma categoria disponível"
	msgCategoryNotFound  = "❌ Categoria não encontrada"
	msgProductNotFound   = "❌ Produto não encontrado"
	msgProductSoldOut    = "❌ Produto esgotado"
	msgStockLimit        = "❌ Quantidade máxima disponível atingida"
	msgCartEmpty         = "❌ Carrinho vazio"
	msgItemRemoved       = "✅ Item removido!"
	msgCartCleared       = "✅ Carrinho limpo!"
	msgAccessDenied      = "❌ Acesso negado"
	msgAdminOnly         = "❌ Acesso não autorizado. Comando apenas para administradores."
	msgStatsFailed       = "❌ Erro ao carregar estatísticas"
	msgSlowDown          = "⏳ Muitas mensagens, aguarde um momento."
)

func price(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

func shortName(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max]) + "..."
}

func mainMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🛍️ Ver Catálogo", Unique: cbViewCatalog},
		{Text: "🛒 Meu Carrinho", Unique: cbViewCart},
	})
}

func catalogView(categories []catalog.Category) (string, *tele.ReplyMarkup) {
	rows := make([][]keyboard.InlineBtn, 0, len(categories)+2)
	for _, cat := range categories {
		emoji := cat.Emoji
		if emoji == "" {
			emoji = "📦"
		}
		rows = append(rows, []keyboard.InlineBtn{
			{Text: emoji + " " + cat.Name, Unique: cbCategory, Data: cat.ID},
		})
	}
	rows = append(rows,
		[]keyboard.InlineBtn{{Text: "🔄 Atualizar", Unique: cbViewCatalog}},
		[]keyboard.InlineBtn{{Text: "🏠 Menu Principal", Unique: cbMainMenu}},
	)

	message := "*📦 Catálogo de Produtos*\n\nSelecione uma categoria para ver os produtos:"
	return message, keyboard.InlineButtonsRows(rows...)
}

func productListView(cat catalog.Category, products []catalog.Product) (string, *tele.ReplyMarkup) {
	emoji := cat.Emoji
	if emoji == "" {
		emoji = "📦"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s %s*\n\n", emoji, cat.Name)
	for i, p := range products {
		stockStatus := "❌ Esgotado"
		if p.Available() {
			stockStatus = fmt.Sprintf("✅ %d un.", p.Stock)
		}
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, p.Name)
		fmt.Fprintf(&b, "   💰 %s | %s\n", price(p.Price), stockStatus)
		if p.Description != "" {
			fmt.Fprintf(&b, "   📝 %s\n", p.Description)
		}
		b.WriteString("\n")
	}

	rows := make([][]keyboard.InlineBtn, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: "Add " + shortName(p.Name, 15), Unique: cbAdd, Data: p.ID},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{
		{Text: "🛒 Ver Carrinho", Unique: cbViewCart},
		{Text: "📦 Voltar Catálogo", Unique: cbViewCatalog},
	})

	return b.String(), keyboard.InlineButtonsRows(rows...)
}

// cartLines orders cart entries by product id for stable rendering.
func cartLines(snapshot map[string]int) []string {
	ids := make([]string, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func emptyCartView() (string, *tele.ReplyMarkup) {
	markup := keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "📦 Ver Catálogo", Unique: cbViewCatalog},
		{Text: "🏠 Menu Principal", Unique: cbMainMenu},
	})
	return "🛒 *Seu Carrinho*\n\n📭 Carrinho vazio", markup
}

func cartView(snapshot map[string]int, products map[string]catalog.Product) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("🛒 *Seu Carrinho*\n\n")

	total := decimal.Zero
	var removeRows [][]keyboard.InlineBtn
	for _, id := range cartLines(snapshot) {
		p, ok := products[id]
		if !ok {
			// Product removed from the catalog after it was added; line is
			// skipped from display and total alike.
			continue
		}
		qty := snapshot[id]
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(subtotal)
		fmt.Fprintf(&b, "%dx *%s*\n   %s\n\n", qty, p.Name, price(subtotal))
		removeRows = append(removeRows, []keyboard.InlineBtn{
			{Text: "🗑️ " + shortName(p.Name, 15), Unique: cbRemove, Data: id},
		})
	}
	fmt.Fprintf(&b, "*Total: %s*", price(total))

	rows := append(removeRows,
		[]keyboard.InlineBtn{{Text: "🗑️ Limpar Carrinho", Unique: cbClearCart}},
		[]keyboard.InlineBtn{{Text: "✅ Finalizar Pedido", Unique: cbCheckout}},
		[]keyboard.InlineBtn{{Text: "📦 Continuar Comprando", Unique: cbViewCatalog}},
	)

	return b.String(), keyboard.InlineButtonsRows(rows...)
}

func clearedCartView() (string, *tele.ReplyMarkup) {
	markup := keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "📦 Ver Catálogo", Unique: cbViewCatalog},
		{Text: "🏠 Menu Principal", Unique: cbMainMenu},
	})
	return "🛒 *Seu Carrinho*\n\n✅ Carrinho limpo!", markup
}

func checkoutView(snapshot map[string]int, products map[string]catalog.Product) (string, *tele.ReplyMarkup) {
	var items strings.Builder
	total := decimal.Zero
	for _, id := range cartLines(snapshot) {
		p, ok := products[id]
		if !ok {
			continue
		}
		qty := snapshot[id]
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(subtotal)
		fmt.Fprintf(&items, "%dx %s - %s\n", qty, p.Name, price(subtotal))
	}

	message := fmt.Sprintf(
		"*📝 Confirmação do Pedido*\n\n*Itens:*\n%s\n*Total: %s*\n\nPara confirmar o pedido, envie seus dados de entrega ou contate o suporte.",
		items.String(), price(total),
	)

	markup := keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "✅ Confirmar", Unique: cbConfirmOrder},
		{Text: "❌ Cancelar", Unique: cbClearCart},
	})
	return message, markup
}

func adminPanelView() (string, *tele.ReplyMarkup) {
	markup := keyboard.InlineButtonsNPerRow([]keyboard.InlineBtn{
		{Text: "📊 Estatísticas", Unique: cbAdmin, Data: adminActionStats},
		{Text: "📦 Produtos", Unique: cbAdmin, Data: adminActionProducts},
		{Text: "🛍️ Categorias", Unique: cbAdmin, Data: adminActionCategories},
		{Text: "📝 Pedidos", Unique: cbAdmin, Data: adminActionOrders},
	}, 2)
	return "👨‍💼 *Painel Admin*\n\nSelecione uma opção:", markup
}

func statsView(stats catalog.DashboardStats) (string, *tele.ReplyMarkup) {
	message := fmt.Sprintf(
		"*📊 Estatísticas do Sistema*\n\n"+
			"📦 Produtos: %d\n"+
			"🛍️ Categorias: %d\n"+
			"📝 Pedidos: %d\n"+
			"💰 Receita: %s\n"+
			"⚠️ Stock Baixo: %d\n"+
			"⏳ Pendentes: %d",
		stats.TotalProducts,
		stats.TotalCategories,
		stats.TotalOrders,
		price(stats.TotalRevenue),
		stats.LowStockItems,
		stats.PendingOrders,
	)

	markup := keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "🔄 Atualizar", Unique: cbAdmin, Data: adminActionStats},
		{Text: "⬅️ Voltar", Unique: cbMainMenu},
	})
	return message, markup
}

func webPanelMessage(icon, noun, panelURL string) string {
	return fmt.Sprintf("%s Para gerenciar %s, acesse o painel web:\n\n%s", icon, noun, panelURL)
}
