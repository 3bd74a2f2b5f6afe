package auth

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
)

const (
	// ContextKeySignupRequest is the key for the validated signup payload
	ContextKeySignupRequest = "signup_request"

	// specialChars is the set of accepted password special characters
	specialChars = `!@#$%^&*()-_=+[]{};:'",.<>/?\|~` + "`"

	minUsernameLen = 3
	maxUsernameLen = 10
	minPasswordLen = 8
	maxPasswordLen = 20
)

// SignupRequest represents the signup request body
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// validateSignup checks the signup payload against the account policy and
// returns a message naming the violated rule, or "" if the payload is valid.
func validateSignup(req SignupRequest) string {
	if len(req.Username) < minUsernameLen || len(req.Username) > maxUsernameLen {
		return "Username must be between 3 and 10 characters"
	}
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		return "Password must be between 8 and 20 characters"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range req.Password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return "Password must contain at least one uppercase letter"
	case !hasLower:
		return "Password must contain at least one lowercase letter"
	case !hasDigit:
		return "Password must contain at least one digit"
	case !strings.ContainsAny(req.Password, specialChars):
		return "Password must contain at least one special character"
	}

	return ""
}

// ValidateSignup returns middleware that checks the signup payload before
// the handler runs. Violations answer 411, the API's distinguishing status
// for signup validation failures. The validated payload is stored in
// context for the handler.
func ValidateSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusLengthRequired, gin.H{"error": "Username and password are required"})
			c.Abort()
			return
		}

		if msg := validateSignup(req); msg != "" {
			c.JSON(http.StatusLengthRequired, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(ContextKeySignupRequest, req)

		c.Next()
	}
}

// GetSignupRequest returns the validated signup payload from the gin context
func GetSignupRequest(c *gin.Context) (SignupRequest, bool) {
	req, exists := c.Get(ContextKeySignupRequest)
	if !exists {
		return SignupRequest{}, false
	}
	return req.(SignupRequest), true
}
