package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/handlers"
	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "linepay.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	err = cfg.Validate()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg)

	log.Info("Starting linepay.api.ch.gov.uk service", log.Data{"bind_addr": cfg.BindAddr, "environment": cfg.Env})
	err = http.ListenAndServe(cfg.BindAddr, router)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting linepay.api.ch.gov.uk service")
}
