package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"unigo_server/routes"
	"unigo_server/services"
	"unigo_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize the Socket.IO server and the room broadcaster
	socketServer := socket.NewSocketServer()
	broadcaster := socket.NewBroadcaster(socketServer)

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	notificationService := &services.NotificationService{
		Dynamo:    dynamoService,
		Profiles:  userProfileService,
		Broadcast: broadcaster,
	}
	matchingService := &services.MatchingService{
		Dynamo:   dynamoService,
		Notifier: notificationService,
	}
	tripService := &services.TripService{
		Dynamo:    dynamoService,
		Matching:  matchingService,
		Broadcast: broadcaster,
	}
	reviewService := &services.ReviewService{
		Dynamo:   dynamoService,
		Profiles: userProfileService,
	}
	tripToolsService := &services.TripToolsService{
		Dynamo:    dynamoService,
		Broadcast: broadcaster,
	}
	s3Service := services.InitializeS3Service()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to UniGo")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterTripRoutes(r, tripService)
	routes.RegisterTripToolsRoutes(r, tripToolsService)
	routes.RegisterMatchRoutes(r, matchingService)
	routes.RegisterNotificationRoutes(r, notificationService)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterReviewRoutes(r, reviewService, matchingService)
	routes.RegisterS3Routes(r, s3Service)

	// Mount the Socket.IO endpoint
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("❌ Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Expire stale trips once an hour
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			count, err := tripService.CleanupExpiredTrips(context.Background())
			if err != nil {
				log.Printf("❌ Trip cleanup failed: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("🧹 Expired %d stale trips", count)
			}
		}
	}()

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
