package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"condogest/internal/config"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID       = "userID"
	ContextOperatorName = "operatorName"
	ContextOrganization = "organizationName"
	ContextAddress      = "organizationAddress"
	ContextBearerToken  = "bearerToken"
)

// getJWTKey returns the JWT key shared with the condominium API.
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims are the claims issued by the condominium API. The operator
// name feeds the report's "Solicitado por" line; the condominium fields
// feed the document banner.
type JWTClaims struct {
	UserID             string `json:"user_id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CondominiumName    string `json:"condominium_name"`
	CondominiumAddress string `json:"condominium_address"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the JWT token and sets the operator identity
// and tenant context on the request. The raw bearer token is kept so
// record-store calls can forward it; authorization decisions themselves
// belong to the condominium API.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getJWTKey(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOperatorName, claims.Name)
		c.Set(ContextOrganization, claims.CondominiumName)
		c.Set(ContextAddress, claims.CondominiumAddress)
		c.Set(ContextBearerToken, tokenString)
		c.Next()
	}
}
