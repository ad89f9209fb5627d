// Package navigation holds the single current screen and the transition
// rules between screens. It carries no business validation; collaborators
// report their terminal outcomes and the controller moves the app along.
package navigation

import (
	"sync"
	"time"

	"github.com/F1oxyz/coffe-cat-cop/internal/catalog"
)

type ScreenKind int

const (
	ScreenLoading ScreenKind = iota
	ScreenWelcome
	ScreenLogin
	ScreenRegister
	ScreenMenu
	ScreenProductDetails
	ScreenAddProduct
	ScreenThankYou
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenLoading:
		return "loading"
	case ScreenWelcome:
		return "welcome"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenMenu:
		return "menu"
	case ScreenProductDetails:
		return "productDetails"
	case ScreenAddProduct:
		return "addProduct"
	case ScreenThankYou:
		return "thankYou"
	default:
		return "unknown"
	}
}

// Screen is the active screen. Product is set only for ScreenProductDetails.
type Screen struct {
	Kind    ScreenKind
	Product *catalog.Product
}

// DefaultSplashDelay is how long the loading splash is shown before the
// unconditional transition to the welcome screen.
const DefaultSplashDelay = 5 * time.Second

// Controller holds exactly one active screen; transitions are atomic from
// the caller's perspective.
type Controller struct {
	splash time.Duration

	mu            sync.Mutex
	current       Screen
	authenticated bool
}

func NewController(splash time.Duration) *Controller {
	return &Controller{
		splash:  splash,
		current: Screen{Kind: ScreenLoading},
	}
}

// Start schedules the Loading -> Welcome transition. No user input is
// possible during the splash window.
func (c *Controller) Start() {
	time.AfterFunc(c.splash, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.current.Kind == ScreenLoading {
			c.current = Screen{Kind: ScreenWelcome}
		}
	})
}

// NavigateTo switches to a plain screen. Product details are entered through
// ShowProduct, which carries the product being viewed.
func (c *Controller) NavigateTo(kind ScreenKind) {
	if kind == ScreenProductDetails {
		return
	}
	c.set(Screen{Kind: kind})
}

func (c *Controller) ShowProduct(p catalog.Product) {
	c.set(Screen{Kind: ScreenProductDetails, Product: &p})
}

func (c *Controller) HandleSuccessfulLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = true
	c.current = Screen{Kind: ScreenMenu}
}

func (c *Controller) HandleSuccessfulRegistration() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = true
	c.current = Screen{Kind: ScreenMenu}
}

func (c *Controller) HandleLogout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = false
	c.current = Screen{Kind: ScreenWelcome}
}

func (c *Controller) HandleProductPublished() {
	c.set(Screen{Kind: ScreenMenu})
}

func (c *Controller) HandleOrderPlaced() {
	c.set(Screen{Kind: ScreenThankYou})
}

func (c *Controller) Current() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

func (c *Controller) set(s Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
}
