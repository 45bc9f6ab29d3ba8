package main

import (
	"os"

	"github.com/DRSN-tech/catalog-api/internal/app"
	config "github.com/DRSN-tech/catalog-api/internal/cfg"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
)

//	@title			Catalog API
//	@version		1.0
//	@description	Учебный HTTP API каталога товаров поверх фиксированного набора данных в памяти

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
