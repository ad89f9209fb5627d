package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"github.com/F1oxyz/coffe-cat-cop/internal/catalog"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"
	"github.com/F1oxyz/coffe-cat-cop/internal/metrics"
	"github.com/F1oxyz/coffe-cat-cop/internal/navigation"
	"github.com/F1oxyz/coffe-cat-cop/internal/ordering"
	"github.com/F1oxyz/coffe-cat-cop/internal/user"
)

// app is the terminal stand-in for the device UI: it renders the current
// screen and feeds user commands into the navigation controller. Every
// operation runs to completion before the next prompt, so there is never
// more than one submission in flight per screen.
type app struct {
	nav     *navigation.Controller
	users   user.Service
	catalog catalog.Service
	orders  ordering.Service
	metrics *metrics.Registry

	in  *bufio.Scanner
	out io.Writer

	// products as last listed, indexed by menu position.
	products []catalog.Product
}

func newApp(
	nav *navigation.Controller,
	users user.Service,
	catalogSvc catalog.Service,
	orders ordering.Service,
	reg *metrics.Registry,
	in io.Reader,
	out io.Writer,
) *app {
	return &app{
		nav:     nav,
		users:   users,
		catalog: catalogSvc,
		orders:  orders,
		metrics: reg,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (a *app) run() {
	for {
		switch screen := a.nav.Current(); screen.Kind {
		case navigation.ScreenLoading:
			time.Sleep(100 * time.Millisecond)
		case navigation.ScreenWelcome:
			if !a.welcome() {
				return
			}
		case navigation.ScreenLogin:
			if !a.login() {
				return
			}
		case navigation.ScreenRegister:
			if !a.register() {
				return
			}
		case navigation.ScreenMenu:
			if !a.menu() {
				return
			}
		case navigation.ScreenProductDetails:
			if !a.productDetails(screen.Product) {
				return
			}
		case navigation.ScreenAddProduct:
			if !a.addProduct() {
				return
			}
		case navigation.ScreenThankYou:
			if !a.thankYou() {
				return
			}
		}
	}
}

// opCtx tags one user-initiated operation for the logs.
func (a *app) opCtx() context.Context {
	return logger.WithOpID(context.Background(), uuid.NewString())
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line; ok is false once input is exhausted.
func (a *app) prompt(label string) (string, bool) {
	a.printf("%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) welcome() bool {
	a.printf("\n== Coffee Cat ==\n[l] log in  [r] register  [q] quit\n")
	cmd, ok := a.prompt("choice")
	if !ok {
		return false
	}

	switch cmd {
	case "l":
		a.nav.NavigateTo(navigation.ScreenLogin)
	case "r":
		a.nav.NavigateTo(navigation.ScreenRegister)
	case "q":
		return false
	}
	return true
}

func (a *app) login() bool {
	a.printf("\n-- Log in (empty email to go back) --\n")
	email, ok := a.prompt("email")
	if !ok {
		return false
	}
	if email == "" {
		a.nav.NavigateTo(navigation.ScreenWelcome)
		return true
	}
	password, ok := a.prompt("password")
	if !ok {
		return false
	}

	if _, err := a.users.SignIn(a.opCtx(), email, password); err != nil {
		a.printf("! %v\n", err)
		return true
	}

	a.nav.HandleSuccessfulLogin()
	return true
}

func (a *app) register() bool {
	a.printf("\n-- Register (empty email to go back) --\n")
	email, ok := a.prompt("email")
	if !ok {
		return false
	}
	if email == "" {
		a.nav.NavigateTo(navigation.ScreenWelcome)
		return true
	}
	password, ok := a.prompt("password")
	if !ok {
		return false
	}

	if _, err := a.users.SignUp(a.opCtx(), email, password); err != nil {
		a.printf("! %v\n", err)
		return true
	}

	a.nav.HandleSuccessfulRegistration()
	return true
}

func (a *app) menu() bool {
	ctx := a.opCtx()

	start := time.Now()
	products, err := a.catalog.List(ctx)
	a.metrics.CatalogListSec.Observe(time.Since(start).Seconds())
	if err != nil {
		a.printf("! could not load the menu: %v\n", err)
		cmd, ok := a.prompt("[enter] retry  [q] quit")
		if !ok || cmd == "q" {
			return false
		}
		return true
	}
	a.products = products

	a.printf("\n== Menu ==\n")
	if len(products) == 0 {
		a.printf("no products yet\n")
	}
	for i, p := range products {
		marker := " "
		if _, err := a.catalog.Image(ctx, p.ImageKey); err != nil {
			// Placeholder instead of a photo; not a data error.
			marker = "?"
		}
		a.printf("%2d. [%s] %-20s $%.2f\n", i+1, marker, p.Name, p.Price)
	}
	a.printf("[n] open product n  [a] add product  [o] sign out  [q] quit\n")

	cmd, ok := a.prompt("choice")
	if !ok {
		return false
	}

	switch cmd {
	case "a":
		a.nav.NavigateTo(navigation.ScreenAddProduct)
	case "o":
		a.users.SignOut()
		a.nav.HandleLogout()
	case "q":
		return false
	default:
		if n, err := strconv.Atoi(cmd); err == nil && n >= 1 && n <= len(a.products) {
			a.nav.ShowProduct(a.products[n-1])
		}
	}
	return true
}

func (a *app) productDetails(p *catalog.Product) bool {
	a.printf("\n== %s ==\n%s\n$%.2f  sizes: %s\n",
		p.Name, p.Description, p.Price, strings.Join(p.Sizes, ", "))

	size, ok := a.prompt("size (empty to go back)")
	if !ok {
		return false
	}
	if size == "" {
		a.nav.NavigateTo(navigation.ScreenMenu)
		return true
	}

	qtyStr, ok := a.prompt("quantity")
	if !ok {
		return false
	}
	quantity, err := strconv.Atoi(qtyStr)
	if err != nil || quantity < 1 {
		quantity = 1
	}

	address, ok := a.prompt("delivery address")
	if !ok {
		return false
	}

	out := a.orders.Place(a.opCtx(), ordering.PlaceInput{
		Product:         *p,
		Size:            size,
		Quantity:        quantity,
		DeliveryAddress: address,
	})
	if !out.Ordered {
		a.metrics.OrderFailures.Inc()
		a.printf("! %v\n", out.Err)
		return true
	}

	a.metrics.OrdersPlaced.Inc()
	a.nav.HandleOrderPlaced()
	return true
}

func (a *app) addProduct() bool {
	a.printf("\n-- Add product (empty name to go back) --\n")
	name, ok := a.prompt("name")
	if !ok {
		return false
	}
	if name == "" {
		a.nav.NavigateTo(navigation.ScreenMenu)
		return true
	}
	price, ok := a.prompt("price")
	if !ok {
		return false
	}
	description, ok := a.prompt("description")
	if !ok {
		return false
	}
	path, ok := a.prompt("photo file")
	if !ok {
		return false
	}

	img, err := loadPhoto(path)
	if err != nil {
		a.printf("! %v\n", err)
		return true
	}

	out := a.catalog.Publish(a.opCtx(), catalog.PublishInput{
		Name:        name,
		Price:       price,
		Description: description,
		Image:       img,
	})
	if !out.Published {
		a.metrics.PublishFailures.WithLabelValues(string(out.Stage)).Inc()
		if out.Stage == catalog.StageWriteRecord {
			a.metrics.ImageRollbacks.Inc()
		}
		a.printf("! %v\n", out.Err)
		return true
	}

	a.metrics.ProductsPublished.Inc()
	a.metrics.ImagesSaved.Inc()
	a.nav.HandleProductPublished()
	return true
}

func (a *app) thankYou() bool {
	a.printf("\nThank you! Your order is on its way.\n")
	if _, ok := a.prompt("[enter] back to menu"); !ok {
		return false
	}
	a.nav.NavigateTo(navigation.ScreenMenu)
	return true
}

// loadPhoto is the picker stand-in: it reads and decodes a local image file.
func loadPhoto(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return img, nil
}
