package middleware

import (
	"net/http"
	"strings"

	"github.com/clowiiza1/pukkeconnect-backend/internal/authz"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	identityKey     = "identity"
	capabilitiesKey = "capabilities"
)

// JWTAuth resolves the bearer token into an identity and the capability set
// of its role. Both are stored on the gin context for the handlers.
func JWTAuth(authService *services.AuthService, resolver *authz.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		authenticate(c, authService, resolver, parts[1])
	}
}

// QueryTokenAuth is JWTAuth for clients that cannot set headers, such as
// browser websockets. The token travels in the "token" query parameter.
func QueryTokenAuth(authService *services.AuthService, resolver *authz.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token query parameter required"})
			return
		}
		authenticate(c, authService, resolver, token)
	}
}

func authenticate(c *gin.Context, authService *services.AuthService, resolver *authz.Resolver, token string) {
	identity, err := authService.ValidateToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(identityKey, identity)
	c.Set(capabilitiesKey, resolver.For(identity.Role))
	c.Next()
}

// RequireCapability rejects callers whose role lacks capability.
func RequireCapability(capability authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Capabilities(c).Has(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing capability " + string(capability)})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller, or nil outside JWTAuth.
func CurrentIdentity(c *gin.Context) *services.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*services.Identity)
	return identity
}

func Capabilities(c *gin.Context) authz.CapabilitySet {
	v, ok := c.Get(capabilitiesKey)
	if !ok {
		return authz.CapabilitySet{}
	}
	set, _ := v.(authz.CapabilitySet)
	if set == nil {
		return authz.CapabilitySet{}
	}
	return set
}
