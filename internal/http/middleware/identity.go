package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// PlayerIDKey is the gin context key carrying the authenticated player id.
const PlayerIDKey = "player_id"

var jwtSecret []byte

// InitJWT sets the HMAC secret used to verify bearer tokens. An empty
// secret disables token auth and leaves only the dev header.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

// IssueToken mints a token for a player id. Used by the dev token endpoint
// and by tests.
func IssueToken(playerID string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": playerID,
	})
	return tok.SignedString(jwtSecret)
}

// Identity resolves the calling player. It accepts an Authorization bearer
// token whose subject is the player id, or the X-Player-ID header when no
// JWT secret is configured (local development, chat-bot relays behind a
// trusted proxy).
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") && len(jwtSecret) > 0 {
			raw := strings.TrimPrefix(auth, "Bearer ")
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return jwtSecret, nil
			})
			if err != nil || !tok.Valid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			sub, err := tok.Claims.GetSubject()
			if err != nil || sub == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.Set(PlayerIDKey, sub)
			c.Next()
			return
		}

		if id := c.GetHeader("X-Player-ID"); id != "" {
			c.Set(PlayerIDKey, id)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
}

// PlayerID reads the player id set by Identity.
func PlayerID(c *gin.Context) string {
	v, _ := c.Get(PlayerIDKey)
	id, _ := v.(string)
	return id
}
