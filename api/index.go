package handler

import (
	"agenda/config"
	"agenda/di"
	"agenda/shared/logger"
	"net/http"
	"sync"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entry point. The service graph is built on the first
// invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.HTTP.Handler().ServeHTTP(w, r)
}
