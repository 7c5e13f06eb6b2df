package main

import (
	"github.com/rosalinebakery/store_service/config"
	"github.com/rosalinebakery/store_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
