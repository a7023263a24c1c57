// Package jwt provides JSON Web Token utilities for the Biolink API.
//
// Tokens are signed with RS256. The server loads a private key to mint
// tokens; validation-only deployments can load just the public key.
//
// # Token Generation
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    Issuer:         "biolink-api",
//	    ExpirationMins: 1440,
//	})
//
//	token, err := service.Sign(userID, email, username)
//
// # Token Validation
//
//	claims, err := service.Verify(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
package jwt
