// Command dev-token mints a signed access token for local development,
// so API endpoints can be exercised without going through register/login.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/clubsphere/pkg/jwt"
)

func main() {
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to JWT private key")
	userID := flag.String("user", "user:dev", "User ID for the token")
	email := flag.String("email", "dev@clubsphere.dev", "Email for the token")
	name := flag.String("name", "Dev User", "Display name for the token")
	accountType := flag.String("account", "club_admin", "Account type (student or club_admin)")
	issuer := flag.String("issuer", "clubsphere.forgo.software", "JWT issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	generate := flag.Bool("generate-keys", false, "Generate a key pair at ./keys before signing")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *generate {
		if err := os.MkdirAll("./keys", 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating keys dir: %v\n", err)
			os.Exit(1)
		}
		if err := jwt.GenerateKeyPair("./keys/private.pem", "./keys/public.pem"); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Key pair written to ./keys")
	}

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate keys first with: dev-token -generate-keys\n")
		os.Exit(1)
	}

	claims := jwt.Claims{
		Subject:     *userID,
		UserID:      *userID,
		Email:       *email,
		Name:        *name,
		AccountType: *accountType,
	}

	token, err := jwtService.Sign(claims)
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
			"account_type": *accountType,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Dev Token Generated")
		fmt.Println("===================")
		fmt.Printf("User ID:  %s\n", *userID)
		fmt.Printf("Email:    %s\n", *email)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/users/me/clubs\n", token[:50]+"...")
	}
}
