package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"spark_server/routes"
	"spark_server/services"
	"spark_server/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Pick the key-value store backend
	var store services.KVStore
	if utils.EnvString("STORAGE_BACKEND", "dynamo") == "memory" {
		log.Println("Using in-memory store")
		store = services.NewMemoryStore()
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		store = services.NewDynamoStore(dynamoClient, os.Getenv("STORAGE_TABLE"))
		log.Println("DynamoDB client initialized.")
	}
	storage := services.NewStorageService(store)

	// Initialize Services
	userProfileService := services.NewUserProfileService(storage)
	actionService := services.NewActionService(storage)
	actionService.Mode = utils.EnvString("MATCH_MODE", services.MatchModeRandom)
	actionService.MatchProbability = utils.EnvFloat("MATCH_PROBABILITY", services.DefaultMatchProbability)
	chatService := services.NewChatService(storage)
	matchService := services.NewMatchService(storage)
	settingsService := services.NewSettingsService(storage)

	var s3Service *services.S3Service
	if bucket := os.Getenv("S3_BUCKET_NAME"); bucket != "" {
		s3Service = services.NewS3Service(services.InitializeS3Client(), bucket)
	}

	// Bootstrap the demo profiles on first run
	if err := userProfileService.SeedUsers(context.Background()); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// Set up the server port
	port := utils.EnvString("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Spark")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterActionRoutes(r, actionService)
	routes.RegisterChatRoutes(r, chatService, userProfileService)
	routes.RegisterMatchRoutes(r, matchService, userProfileService)
	routes.RegisterSettingsRoutes(r, settingsService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
