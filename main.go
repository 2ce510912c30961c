package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"community-fund/auth"
	"community-fund/fund"
	"community-fund/handlers"
	"community-fund/models"
	"community-fund/storage"
)

type Config struct {
	Addr       string `json:"addr"`
	DataPath   string `json:"data_path"`
	JWTKey     string `json:"jwt_key"`
	Production bool   `json:"production"`
	// Credentials replaces the seed accounts wholesale when set. Password
	// hashes must be bcrypt.
	Credentials []models.Credential `json:"credentials"`
}

func loadConfig() Config {
	config := Config{
		Addr:     ":8000",
		DataPath: "data/fund.json",
		JWTKey:   "community-fund-dev",
	}
	file, err := os.Open("config.json")
	if err != nil {
		return config
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		log.Fatalf("Could not parse config.json: %v", err)
	}
	return config
}

func main() {
	config := loadConfig()

	store, err := storage.Open(config.DataPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	fundSvc := fund.New(store)
	if err := fundSvc.Seed(); err != nil {
		log.Fatal(err)
	}

	creds := config.Credentials
	if len(creds) == 0 {
		creds = models.SeedCredentials()
	}
	authStore := auth.NewStore(store, creds)

	h := handlers.NewHandler(authStore, fundSvc, store, []byte(config.JWTKey), config.Production)
	r := handlers.Routes(h)

	log.Println("Server is running on " + config.Addr)
	log.Fatal(http.ListenAndServe(config.Addr, r))
}
