package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"codeberg.org/daybook/server/internal/auth"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// mints a user access token signed with SUPABASE_JWT_SECRET for calling
// /api/v1/usage and /api/v1/feedback against a local server
func main() {
	userID := flag.String("user", "", "user id (a new uuid when empty)")
	email := flag.String("email", "test@daybook.local", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	verifier, err := auth.NewVerifier(os.Getenv("SUPABASE_JWT_SECRET"))
	if err != nil {
		log.Fatalf("SUPABASE_JWT_SECRET not set: %v", err)
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	token, err := verifier.Issue(*userID, *email, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Printf("user: %s\n\n%s\n\n", *userID, token)
	fmt.Printf("export TEST_TOKEN=\"%s\"\n", token)
}
