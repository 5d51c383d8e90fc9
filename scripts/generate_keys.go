//go:build ignore

// This script generates a JWT secret and an API key for the feeding service.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	fmt.Println("=== Feeding Service Key Generator ===")
	fmt.Println()

	// Shared with the app's auth provider, 32 bytes = 256 bits
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}
	apiKeyHash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		fail("API key hash", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT validation (must match the token issuer)")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API key for service-to-service calls, stored as a bcrypt hash")
	fmt.Printf("API_KEYS=%s\n", apiKeyHash)
	fmt.Println()
	fmt.Println("Give this key to the calling service (X-API-Key header):")
	fmt.Println(apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment")
	fmt.Println("- The plain API key is shown only once")
}
