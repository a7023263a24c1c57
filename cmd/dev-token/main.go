package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/biolink/api/pkg/jwt"
)

func main() {
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to JWT private key")
	publicKeyPath := flag.String("pub", "./keys/public.pem", "Path to JWT public key (used with -generate)")
	generate := flag.Bool("generate", false, "Generate a new RSA key pair and exit")
	userID := flag.String("user", "account:devuser", "Account ID for the token")
	email := flag.String("email", "dev@biolink.page", "Email for the token")
	username := flag.String("username", "devuser", "Username for the token")
	issuer := flag.String("issuer", "api.biolink.page", "JWT issuer")
	expMins := flag.Int("exp", 60*24, "Token expiration in minutes (default: 24 hours)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *generate {
		if err := jwt.GenerateKeyPair(*privateKeyPath, *publicKeyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s and %s\n", *privateKeyPath, *publicKeyPath)
		return
	}

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate keys first with: dev-token -generate\n")
		os.Exit(1)
	}

	token, err := jwtService.Sign(*userID, *email, *username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"user_id":      *userID,
			"email":        *email,
			"username":     *username,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
	fmt.Println("Development Token Generated")
	fmt.Println("===========================")
	fmt.Printf("User ID:  %s\n", *userID)
	fmt.Printf("Username: %s\n", *username)
	fmt.Printf("Email:    %s\n", *email)
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/auth/me\n", token[:50]+"...")
}
