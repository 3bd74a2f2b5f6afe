package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"brainbox/pkg/brainbox/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	models.AutoMigrate(db)
	return db
}

func setupTestRouter(db *gorm.DB, tokens *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db, tokens, zap.NewNop())
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r
}

func doSignup(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(SignupRequest{Username: username, Password: password})
	req, _ := http.NewRequest("POST", "/api/v1/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func doSignin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(SigninRequest{Username: username, Password: password})
	req, _ := http.NewRequest("POST", "/api/v1/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestPasswordHashing(t *testing.T) {
	password := "Testpass1!"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == password {
		t.Error("Hash should not equal plain password")
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword should return true for correct password")
	}

	if CheckPassword("Wrongpass1!", hash) {
		t.Error("CheckPassword should return false for incorrect password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	token, err := tokens.Generate(42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Expected user id 42, got %d", claims.UserID)
	}

	// A different secret must reject the token
	other := NewTokenManager("other-secret")
	if _, err := other.Validate(token); err == nil {
		t.Error("Expected validation to fail with a different secret")
	}
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(tokens), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tc := range cases {
		req, _ := http.NewRequest("GET", "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusForbidden {
			t.Errorf("%s: expected status 403, got %d", tc.name, resp.Code)
		}
	}
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(tokens), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	token, _ := tokens.Generate(7)
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]uint
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["user_id"] != 7 {
		t.Errorf("Expected user id 7, got %d", body["user_id"])
	}
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, NewTokenManager("test-secret"))

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "Validpass1!"},
		{"username too long", "averylongusername", "Validpass1!"},
		{"password too short", "alice", "Ab1!"},
		{"password too long", "alice", "Abcdefgh1!Abcdefgh1!x"},
		{"no uppercase", "alice", "validpass1!"},
		{"no lowercase", "alice", "VALIDPASS1!"},
		{"no digit", "alice", "Validpass!!"},
		{"no special character", "alice", "Validpass11"},
	}

	for _, tc := range cases {
		resp := doSignup(router, tc.username, tc.password)
		if resp.Code != http.StatusLengthRequired {
			t.Errorf("%s: expected status 411, got %d: %s", tc.name, resp.Code, resp.Body.String())
		}
	}

	// No invalid payload may reach persistence
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected 0 users after rejected signups, got %d", count)
	}
}

func TestSignupAndDuplicate(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, NewTokenManager("test-secret"))

	resp := doSignup(router, "alice", "Validpass1!")
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doSignup(router, "alice", "Validpass1!")
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for duplicate signup, got %d", resp.Code)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 user, got %d", count)
	}

	// The stored password is hashed, never plaintext
	var user models.User
	db.First(&user)
	if user.PasswordHash == "Validpass1!" {
		t.Error("Password must not be stored in plaintext")
	}
}

func TestSigninWrongCredentials(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, NewTokenManager("test-secret"))

	doSignup(router, "alice", "Validpass1!")

	// Unknown user and bad password answer identically
	resp := doSignin(router, "nobody", "Validpass1!")
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for unknown user, got %d", resp.Code)
	}

	resp = doSignin(router, "alice", "Wrongpass1!")
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for bad password, got %d", resp.Code)
	}
}

func TestSigninReturnsTokenForUser(t *testing.T) {
	db := setupTestDB(t)
	tokens := NewTokenManager("test-secret")
	router := setupTestRouter(db, tokens)

	doSignup(router, "alice", "Validpass1!")

	resp := doSignin(router, "alice", "Validpass1!")
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["token"] == "" {
		t.Fatal("Expected a token in the response")
	}

	claims, err := tokens.Validate(body["token"])
	if err != nil {
		t.Fatalf("Issued token failed validation: %v", err)
	}

	var user models.User
	if err := db.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("Failed to load user: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Token user id %d does not match signed-up user %d", claims.UserID, user.ID)
	}
}
