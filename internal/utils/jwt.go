package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-indie-chat/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 installation token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the gateway that issued the token
//   - Subject   (sub): the canonical wallet address
//   - ID        (jti): the installation identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters except installationID are required. Returns an error if any
// of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("indie-devnet", addr, "inst-1", time.Hour, "secret")
func GenerateJWTToken(issuer string, address models.Address, installationID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || address.IsZero() || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   address.String(),
		ID:        installationID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Address: address}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the installation address.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and canonicalisation to [models.Address]
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	address, err := parsed.GetAddress()
	if err != nil {
		return models.Token{}, err
	}
	parsed.Address = address

	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseAddressFromJWT reads the subject of a token without verifying its
// signature. Clients use it to learn their own address from the token the
// gateway handed out.
func ParseAddressFromJWT(tokenString string) (models.Address, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}

	address := models.NewAddress(sub)
	if address.IsZero() {
		return "", errors.New("empty subject error")
	}
	return address, nil
}
