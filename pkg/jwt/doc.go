// Package jwt provides JSON Web Token utilities for the ClubSphere API.
//
// Tokens are RS256-signed. The service loads its RSA key pair from PEM
// files at startup; there is no symmetric fallback.
//
// # Token Generation
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    Issuer:         "clubsphere.forgo.software",
//	    ExpirationMins: 1440,
//	})
//
//	token, err := service.Sign(jwt.Claims{UserID: user.ID, Email: user.Email})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// A service constructed with only PublicKeyPath can validate but not
// sign, for components that never mint tokens.
package jwt
