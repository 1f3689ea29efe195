package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-order-api/auth"
	"restaurant-order-api/config"
	"restaurant-order-api/database"
	"restaurant-order-api/models"
	"restaurant-order-api/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		JWTAlgorithm: "HS256",
		TokenTTL:     time.Hour,
		FrontendURL:  "https://menu.example.com",
	}

	r := gin.New()
	routes.Setup(r, db, cfg)

	return &testServer{
		router: r,
		db:     db,
		tokens: auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL),
	}
}

func (s *testServer) createUser(t *testing.T, email string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{
		Name: "Test", Surname: "User",
		Email: email, PasswordHash: hash, Role: role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func (s *testServer) createRestaurant(t *testing.T, name string, ownerID uint) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name: name, Address: "1 Main St", City: "Town", Country: "Land",
		Status: models.RestaurantOpen, OwnerID: ownerID, Email: name + "@example.com",
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return &restaurant
}

func (s *testServer) createProduct(t *testing.T, name string, price int64, restaurantID uint) *models.Product {
	t.Helper()
	product := models.Product{
		Name: name, Price: price, Status: models.ProductAvailable,
		Visible: true, RestaurantID: restaurantID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return &product
}

func (s *testServer) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, _, err := s.tokens.Generate(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// request performs an in-process request; an empty token omits the
// Authorization header.
func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
