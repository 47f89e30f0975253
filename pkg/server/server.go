package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/investlab/vollab/pkg/config"
	"github.com/investlab/vollab/pkg/server/store"
)

type Server struct {
	Config       *config.Config
	Router       *mux.Router
	DB           *gorm.DB
	OptionsStore store.OptionsStore
	RatesStore   store.RatesStore
	HealthStore  store.HealthStore
	srv          *http.Server
}

func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	optionsStore store.OptionsStore,
	ratesStore store.RatesStore,
	healthStore store.HealthStore,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.ListenAddress,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Config:       cfg,
		Router:       router,
		DB:           db,
		OptionsStore: optionsStore,
		RatesStore:   ratesStore,
		HealthStore:  healthStore,
		srv:          srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
