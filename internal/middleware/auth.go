package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"inventorypro/internal/model"
	"inventorypro/pkg/response"
)

// jwtSecret is set once from main via Init; the development fallback keeps
// local runs working without configuration.
var jwtSecret = []byte("default_super_secret_key")

// Init sets the signing secret used by every auth middleware and by login
func Init(secret string) {
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT secret is required in production mode")
		}
		return
	}
	jwtSecret = []byte(secret)
}

// Secret exposes the signing secret for token issuing and the WS handshake
func Secret() []byte {
	return jwtSecret
}

// SetTokenCookie sets the access token as an HttpOnly cookie
func SetTokenCookie(c *gin.Context, accessToken string, maxAgeSeconds int) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}
	c.SetSameSite(sameSite)
	c.SetCookie("access_token", accessToken, maxAgeSeconds, "/", "", secure, true)
}

// ClearTokenCookie removes the access token cookie on logout
func ClearTokenCookie(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}
	c.SetSameSite(sameSite)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
}

// extractClaims pulls the JWT from the cookie or Authorization header and
// validates it.
func extractClaims(c *gin.Context) (jwt.MapClaims, string) {
	tokenString, cookieErr := c.Cookie("access_token")
	if cookieErr != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, "Authorization is missing"
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, "Invalid authorization format. Expected 'Bearer <token>'"
		}
		tokenString = parts[1]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, "Invalid token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "Invalid token claims"
	}
	return claims, ""
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Set("userID", sub)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("userRole", role)
	}
	if name, ok := claims["name"].(string); ok {
		c.Set("userName", name)
	}
}

// RequireAuth validates the JWT and loads the caller's identity into the
// context without any role check.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMsg := extractClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, errMsg))
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRole validates the JWT and checks the caller's role against the
// allowed list.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMsg := extractClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, errMsg))
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				setIdentity(c, claims)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
	}
}

// RequireCapability validates the JWT and checks the caller's role against
// the capability table instead of comparing role names inline. Administrators
// always pass.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMsg := extractClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, errMsg))
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
			return
		}

		if !model.HasCapability(userRole, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: missing permission '"+capability+"'"))
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}
