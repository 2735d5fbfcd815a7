package auth // package auth provides token issuance and verification helpers

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is the single failure value for every way a token can be
// bad: forged signature, malformed payload, unexpected algorithm, missing
// claim or past expiry.  Callers never need to distinguish the cause; the
// middleware maps all of them to the same response.
var ErrInvalidToken = errors.New("invalid or expired token")

// NewAccessToken builds and signs a short-lived HS256 JWT for a user.  The
// token carries the user id under the "userId" claim together with the
// standard exp/iat claims.  Access tokens are delivered to the browser as
// an http-only cookie and presented back on every protected request.
func NewAccessToken(secret string, userID uint64, ttlMin int) (string, error) {
    return newToken(secret, userID, time.Duration(ttlMin)*time.Minute)
}

// NewRefreshToken is the long-lived counterpart of NewAccessToken.  It has
// the same claim shape but is signed with a second, independent secret and
// only ever travels to the /auth/refresh endpoint (enforced by the cookie
// path).  Refresh tokens are not persisted server-side, so they stay valid
// until their natural expiry; sign-out only removes the cookie.
func NewRefreshToken(secret string, userID uint64, ttlDays int) (string, error) {
    return newToken(secret, userID, time.Duration(ttlDays)*24*time.Hour)
}

func newToken(secret string, userID uint64, ttl time.Duration) (string, error) {
    now := time.Now().UTC()
    claims := jwt.MapClaims{
        "userId": userID,
        "exp":    now.Add(ttl).Unix(),
        "iat":    now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// ParseUserID verifies signature and expiry of a token and returns the
// embedded user id.  Verification is fully stateless: a token is valid if
// and only if it was signed with the given secret and has not expired.
func ParseUserID(raw, secret string) (uint64, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC; accepting the
        // algorithm from the token header would let a client pick "none".
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return 0, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return 0, ErrInvalidToken
    }
    // Numeric JSON values decode as float64.
    id, ok := claims["userId"].(float64)
    if !ok || id < 0 {
        return 0, ErrInvalidToken
    }
    return uint64(id), nil
}
