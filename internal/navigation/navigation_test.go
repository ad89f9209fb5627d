package navigation

import (
	"testing"
	"time"

	"github.com/F1oxyz/coffe-cat-cop/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_InitialState(t *testing.T) {
	c := NewController(DefaultSplashDelay)

	assert.Equal(t, ScreenLoading, c.Current().Kind)
	assert.False(t, c.Authenticated())
}

func TestController_SplashTransition(t *testing.T) {
	c := NewController(5 * time.Millisecond)
	c.Start()

	assert.Eventually(t, func() bool {
		return c.Current().Kind == ScreenWelcome
	}, time.Second, time.Millisecond)
}

func TestController_SplashDoesNotOverrideLaterScreen(t *testing.T) {
	c := NewController(5 * time.Millisecond)
	c.Start()

	// Navigation away from the splash before the timer fires must win.
	c.NavigateTo(ScreenWelcome)
	c.HandleSuccessfulLogin()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, ScreenMenu, c.Current().Kind)
}

func TestController_AuthTransitions(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		c := NewController(DefaultSplashDelay)
		c.NavigateTo(ScreenLogin)

		c.HandleSuccessfulLogin()
		assert.Equal(t, ScreenMenu, c.Current().Kind)
		assert.True(t, c.Authenticated())
	})

	t.Run("Registration", func(t *testing.T) {
		c := NewController(DefaultSplashDelay)
		c.NavigateTo(ScreenRegister)

		c.HandleSuccessfulRegistration()
		assert.Equal(t, ScreenMenu, c.Current().Kind)
		assert.True(t, c.Authenticated())
	})

	t.Run("Logout", func(t *testing.T) {
		c := NewController(DefaultSplashDelay)
		c.HandleSuccessfulLogin()

		c.HandleLogout()
		assert.Equal(t, ScreenWelcome, c.Current().Kind)
		assert.False(t, c.Authenticated())
	})
}

func TestController_ProductDetails(t *testing.T) {
	c := NewController(DefaultSplashDelay)
	c.HandleSuccessfulLogin()

	p := catalog.Product{ID: "drink-1", Name: "Latte", Price: 4.5}
	c.ShowProduct(p)

	current := c.Current()
	assert.Equal(t, ScreenProductDetails, current.Kind)
	require.NotNil(t, current.Product)
	assert.Equal(t, "Latte", current.Product.Name)

	t.Run("NavigateTo cannot enter details without a product", func(t *testing.T) {
		c.NavigateTo(ScreenMenu)
		c.NavigateTo(ScreenProductDetails)
		assert.Equal(t, ScreenMenu, c.Current().Kind)
	})
}

func TestController_FlowOutcomes(t *testing.T) {
	c := NewController(DefaultSplashDelay)
	c.HandleSuccessfulLogin()

	t.Run("Published returns to menu", func(t *testing.T) {
		c.NavigateTo(ScreenAddProduct)
		c.HandleProductPublished()
		assert.Equal(t, ScreenMenu, c.Current().Kind)
	})

	t.Run("Ordered shows thank-you", func(t *testing.T) {
		c.ShowProduct(catalog.Product{ID: "drink-1"})
		c.HandleOrderPlaced()
		assert.Equal(t, ScreenThankYou, c.Current().Kind)

		// The details screen is left behind entirely.
		assert.Nil(t, c.Current().Product)
	})
}

func TestScreenKind_String(t *testing.T) {
	assert.Equal(t, "loading", ScreenLoading.String())
	assert.Equal(t, "productDetails", ScreenProductDetails.String())
	assert.Equal(t, "unknown", ScreenKind(99).String())
}
