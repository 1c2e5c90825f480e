package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/candleworks/storefront/internal/models"
	service "github.com/candleworks/storefront/internal/services"
)

type appDeps struct {
	cart     *service.Cart
	session  *service.Session
	account  *service.AccountService
	catalog  *service.CatalogService
	checkout *service.CheckoutService
	orders   *service.OrdersService
}

type screen int

const (
	screenLogin screen = iota
	screenCatalog
	screenCart
	screenCheckout
	screenOrders
)

type appModel struct {
	deps   appDeps
	screen screen

	// login form
	fields     [2]string
	fieldIndex int
	asAdmin    bool

	// catalog / orders
	products []models.Product
	orders   []models.Order
	cursor   int

	// checkout
	paymentTypes []models.PaymentMethodType
	paymentIdx   int

	status string
	busy   bool
}

type loginDoneMsg struct{ err error }

type productsLoadedMsg struct {
	products []models.Product
	err      error
}

type ordersLoadedMsg struct {
	orders []models.Order
	err    error
}

type orderPlacedMsg struct {
	order *models.Order
	err   error
}

func newApp(deps appDeps) appModel {
	return appModel{
		deps:         deps,
		screen:       screenLogin,
		paymentTypes: []models.PaymentMethodType{models.PaymentMethodCash, models.PaymentMethodCreditCard, models.PaymentMethodEFT},
		status:       "Sign in to your store",
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.busy {
			return m, nil
		}

		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenCatalog:
			return m.updateCatalog(msg)
		case screenCart:
			return m.updateCart(msg)
		case screenCheckout:
			return m.updateCheckout(msg)
		case screenOrders:
			return m.updateOrders(msg)
		}

	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Login failed: " + msg.err.Error()

			return m, nil
		}

		m.screen = screenCatalog
		m.busy = true
		m.status = "Loading products..."

		return m, m.loadProductsCmd()

	case productsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Could not load products: " + msg.err.Error()

			return m, nil
		}

		m.products = msg.products
		m.cursor = 0
		m.status = fmt.Sprintf("%d products", len(m.products))

	case ordersLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Could not load orders: " + msg.err.Error()

			return m, nil
		}

		m.orders = msg.orders
		m.cursor = 0
		m.status = fmt.Sprintf("%d orders for your store", len(m.orders))

	case orderPlacedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Checkout failed: " + msg.err.Error()

			return m, nil
		}

		// Success: the cart is cleared here, by the caller, not inside
		// the orchestrator.
		m.deps.cart.Clear()
		m.screen = screenCatalog
		m.status = fmt.Sprintf("Order %s placed (%s)", msg.order.OrderNumber, msg.order.OrderStatus)
	}

	return m, nil
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.fieldIndex = (m.fieldIndex + 1) % len(m.fields)
	case "up":
		m.fieldIndex = (m.fieldIndex + len(m.fields) - 1) % len(m.fields)
	case "ctrl+a":
		m.asAdmin = !m.asAdmin
	case "backspace":
		if f := m.fields[m.fieldIndex]; f != "" {
			m.fields[m.fieldIndex] = f[:len(f)-1]
		}
	case "enter":
		m.busy = true
		m.status = "Signing in..."

		return m, m.loginCmd(m.fields[0], m.fields[1], m.asAdmin)
	default:
		if msg.Type == tea.KeyRunes {
			m.fields[m.fieldIndex] += string(msg.Runes)
		}
	}

	return m, nil
}

func (m appModel) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "enter", "a":
		if len(m.products) > 0 {
			product := m.products[m.cursor]
			m.deps.cart.AddLine(product)
			m.status = fmt.Sprintf("Added %s (cart: %d items, R%.2f)", product.Name, m.deps.cart.Count(), m.deps.cart.Total())
		}
	case "r":
		m.busy = true
		m.status = "Loading products..."

		return m, m.loadProductsCmd()
	case "c":
		m.screen = screenCart
		m.cursor = 0
		m.status = "Your cart"
	case "o":
		m.busy = true
		m.screen = screenOrders
		m.status = "Loading orders..."

		return m, m.loadOrdersCmd()
	}

	return m, nil
}

func (m appModel) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.deps.cart.Lines()

	switch msg.String() {
	case "esc", "b":
		m.screen = screenCatalog
		m.cursor = 0
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(lines)-1 {
			m.cursor++
		}
	case "+":
		if m.cursor < len(lines) {
			line := lines[m.cursor]
			m.deps.cart.SetQuantity(line.Product.ProductNumber, line.Quantity+1)
		}
	case "-":
		if m.cursor < len(lines) {
			line := lines[m.cursor]
			m.deps.cart.SetQuantity(line.Product.ProductNumber, line.Quantity-1)
		}
	case "x":
		if m.cursor < len(lines) {
			m.deps.cart.RemoveLine(lines[m.cursor].Product.ProductNumber)
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "enter":
		if len(lines) == 0 {
			m.status = "Cart is empty"

			return m, nil
		}

		if !m.deps.session.IsStoreReady() {
			m.status = "Store information is required before checkout"

			return m, nil
		}

		m.screen = screenCheckout
		m.status = "Choose a payment method"
	}

	return m, nil
}

func (m appModel) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.screen = screenCart
	case "left":
		if m.paymentIdx > 0 {
			m.paymentIdx--
		}
	case "right":
		if m.paymentIdx < len(m.paymentTypes)-1 {
			m.paymentIdx++
		}
	case "enter":
		m.busy = true
		m.status = "Placing order..."

		return m, m.placeOrderCmd(m.paymentTypes[m.paymentIdx])
	}

	return m, nil
}

func (m appModel) updateOrders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.screen = screenCatalog
		m.cursor = 0
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.orders)-1 {
			m.cursor++
		}
	case "r":
		m.busy = true
		m.status = "Loading orders..."

		return m, m.loadOrdersCmd()
	}

	return m, nil
}

func (m appModel) loginCmd(username, password string, asAdmin bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		if asAdmin {
			_, err = m.deps.account.LoginAdmin(ctx, username, password)
		} else {
			_, err = m.deps.account.LoginStore(ctx, username, password)
			if err == nil {
				// Some backend responses omit the store relation; resolve
				// it now so checkout gating works.
				_, _ = m.deps.session.ResolveStore(ctx)
			}
		}

		return loginDoneMsg{err: err}
	}
}

func (m appModel) loadProductsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		products, err := m.deps.catalog.Products(ctx)

		return productsLoadedMsg{products: products, err: err}
	}
}

func (m appModel) loadOrdersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store := m.deps.session.Store()
		if store == nil {
			return ordersLoadedMsg{err: fmt.Errorf("no store on session")}
		}

		orders, err := m.deps.orders.OrdersForStore(ctx, store.StoreNumber)

		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (m appModel) placeOrderCmd(paymentType models.PaymentMethodType) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		order, err := m.deps.checkout.PlaceOrder(ctx, m.deps.cart, m.deps.session.Store(), paymentType)

		return orderPlacedMsg{order: order, err: err}
	}
}

func (m appModel) View() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "candleworks storefront")
	fmt.Fprintln(b, "")

	switch m.screen {
	case screenLogin:
		labels := [2]string{"Username", "Password"}
		for i, label := range labels {
			marker := " "
			if i == m.fieldIndex {
				marker = ">"
			}

			value := m.fields[i]
			if i == 1 {
				value = strings.Repeat("*", len(value))
			}

			fmt.Fprintf(b, " %s %s: %s\n", marker, label, value)
		}

		mode := "store owner"
		if m.asAdmin {
			mode = "admin"
		}

		fmt.Fprintf(b, "\n Signing in as: %s (ctrl+a to switch)\n", mode)
		fmt.Fprintln(b, "\nControls: tab next field, enter to sign in, ctrl+c to quit")

	case screenCatalog:
		fmt.Fprintln(b, "Products:")
		for i, product := range m.products {
			marker := " "
			if i == m.cursor {
				marker = ">"
			}

			fmt.Fprintf(b, " %s %-24s R%8.2f  stock %d  %s\n", marker, product.Name, product.Price, product.StockQuantity, product.Scent)
		}

		fmt.Fprintf(b, "\nCart: %d items, R%.2f\n", m.deps.cart.Count(), m.deps.cart.Total())
		fmt.Fprintln(b, "\nControls: enter add to cart, c cart, o orders, r reload, q quit")

	case screenCart:
		fmt.Fprintln(b, "Cart:")
		lines := m.deps.cart.Lines()
		for i, line := range lines {
			marker := " "
			if i == m.cursor {
				marker = ">"
			}

			fmt.Fprintf(b, " %s %-24s x%-3d R%8.2f\n", marker, line.Product.Name, line.Quantity, line.Subtotal())
		}

		fmt.Fprintf(b, "\nTotal: R%.2f\n", m.deps.cart.Total())
		fmt.Fprintln(b, "\nControls: +/- quantity, x remove, enter checkout, b back")

	case screenCheckout:
		fmt.Fprintln(b, "Payment method (use left/right):")
		for i, pt := range m.paymentTypes {
			marker := " "
			if i == m.paymentIdx {
				marker = "*"
			}

			fmt.Fprintf(b, " %s %s\n", marker, pt)
		}

		fmt.Fprintf(b, "\nTotal: R%.2f\n", m.deps.cart.Total())
		fmt.Fprintln(b, "\nControls: enter place order, b back")

	case screenOrders:
		fmt.Fprintln(b, "Orders:")
		for i, order := range m.orders {
			marker := " "
			if i == m.cursor {
				marker = ">"
			}

			fmt.Fprintf(b, " %s %-12s %-12s %d items\n", marker, order.OrderNumber, order.OrderStatus, len(order.OrderItems))
		}

		fmt.Fprintln(b, "\nControls: r reload, b back")
	}

	fmt.Fprintf(b, "\nStatus: %s\n", m.status)

	return b.String()
}
