package handler

import (
	"net/http"
	"os"
	"sync"

	"grandhotel/config"
	"grandhotel/di"
	"grandhotel/shared/logger"
	transport "grandhotel/transport/http"

	"github.com/rs/zerolog"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg, os.Stdout, zerolog.InfoLevel)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
