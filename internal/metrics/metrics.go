package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	ProductsPublished prometheus.Counter
	PublishFailures   *prometheus.CounterVec
	OrdersPlaced      prometheus.Counter
	OrderFailures     prometheus.Counter
	ImagesSaved       prometheus.Counter
	ImageRollbacks    prometheus.Counter
	CatalogListSec    prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "app_products_published_total"})
	publishFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "app_publish_failures_total"},
		[]string{"stage"},
	)
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{Name: "app_orders_placed_total"})
	orderFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "app_order_failures_total"})
	imagesSaved := prometheus.NewCounter(prometheus.CounterOpts{Name: "app_images_saved_total"})
	imageRollbacks := prometheus.NewCounter(prometheus.CounterOpts{Name: "app_image_rollbacks_total"})
	catalogList := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "app_catalog_list_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(published, publishFailures, ordersPlaced, orderFailures, imagesSaved, imageRollbacks, catalogList)

	return &Registry{
		reg:               r,
		ProductsPublished: published,
		PublishFailures:   publishFailures,
		OrdersPlaced:      ordersPlaced,
		OrderFailures:     orderFailures,
		ImagesSaved:       imagesSaved,
		ImageRollbacks:    imageRollbacks,
		CatalogListSec:    catalogList,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
