package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	regionID        = os.Getenv("AWS_REGION")
)

// isValid verifies the JWT against the user pool's JWK set and returns its
// claims.
func isValid(t string) (jwt.MapClaims, error) {
	userPoolID := os.Getenv("USER_POOL")
	jwksURL := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s/.well-known/jwks.json", regionID, userPoolID)

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{})
	if err != nil {
		log.Fatalf("Failed to create JWK Set from resource at the given URL.\nError: %s", err)
	}

	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(t, claims, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("could not parse token error='%w'", err)
	}

	if !token.Valid {
		log.Println("token not valid")
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func bearerToken(headers map[string]string) (string, error) {
	auth, ok := headers["Authorization"]
	if !ok {
		auth = headers["authorization"]
	}
	parts := strings.Split(auth, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("Unauthorized")
	}
	return parts[1], nil
}

func handler(ctx context.Context, event events.APIGatewayCustomAuthorizerRequestTypeRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	token, err := bearerToken(event.Headers)
	if err != nil {
		return events.APIGatewayCustomAuthorizerResponse{}, err
	}

	claims, err := isValid(token)
	if err != nil {
		return events.APIGatewayCustomAuthorizerResponse{}, err
	}
	return generatePolicy("user", "Allow", "*", claims), nil
}

func generatePolicy(principalId, effect, resource string, claims jwt.MapClaims) events.APIGatewayCustomAuthorizerResponse {
	authResponse := events.APIGatewayCustomAuthorizerResponse{PrincipalID: principalId}
	if effect != "" && resource != "" {
		authResponse.PolicyDocument = events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   effect,
					Resource: []string{resource},
				},
			},
		}
	}

	authResponse.Context = map[string]interface{}{
		"email": claims["email"],
	}

	return authResponse
}

func main() {
	lambda.Start(handler)
}
