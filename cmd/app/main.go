package main

import (
	"log"
	"net/http"
	"os"

	"github.com/F1oxyz/coffe-cat-cop/internal/catalog"
	"github.com/F1oxyz/coffe-cat-cop/internal/config"
	"github.com/F1oxyz/coffe-cat-cop/internal/db"
	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
	"github.com/F1oxyz/coffe-cat-cop/internal/imagestore"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"
	"github.com/F1oxyz/coffe-cat-cop/internal/metrics"
	"github.com/F1oxyz/coffe-cat-cop/internal/middleware"
	"github.com/F1oxyz/coffe-cat-cop/internal/navigation"
	"github.com/F1oxyz/coffe-cat-cop/internal/ordering"
	"github.com/F1oxyz/coffe-cat-cop/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	store := docstore.NewPostgres(database)
	images := imagestore.NewFileStore(cfg.ImageDir)

	userSvc := user.NewService(user.NewRepository(store), []byte(cfg.JWTSecret))
	catalogSvc := catalog.NewService(catalog.NewRepository(store), images)
	orderSvc := ordering.NewService(ordering.NewRepository(store), userSvc)

	reg := metrics.NewRegistry()
	go serveOps(cfg.OpsPort, reg)

	nav := navigation.NewController(navigation.DefaultSplashDelay)
	nav.Start()

	a := newApp(nav, userSvc, catalogSvc, orderSvc, reg, os.Stdin, os.Stdout)
	a.run()
}

func serveOps(port string, reg *metrics.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log.Printf("ops listener running at http://localhost:%s/", port)
	if err := http.ListenAndServe(":"+port, middleware.Logging(mux)); err != nil {
		log.Printf("ops listener stopped: %v", err)
	}
}
