package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-order-api/models"
)

func productBody(name string, restaurantID uint) map[string]interface{} {
	return map[string]interface{}{
		"name":          name,
		"price":         450,
		"restaurant_id": restaurantID,
	}
}

func TestCreateProductScopedToOwnedRestaurant(t *testing.T) {
	s := newTestServer(t)
	ownerA := s.createUser(t, "a@x.com", models.RoleOwner)
	ownerB := s.createUser(t, "b@x.com", models.RoleOwner)
	restA := s.createRestaurant(t, "rest-a", ownerA.ID)
	restB := s.createRestaurant(t, "rest-b", ownerB.ID)

	// Own restaurant: fine.
	w := s.request(t, http.MethodPost, "/products", s.tokenFor(t, ownerA), productBody("soup", restA.ID))
	if w.Code != http.StatusOK {
		t.Errorf("own restaurant: %d %s", w.Code, w.Body.String())
	}

	// Someone else's restaurant: forbidden.
	w = s.request(t, http.MethodPost, "/products", s.tokenFor(t, ownerA), productBody("stew", restB.ID))
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign restaurant: got %d, want 403", w.Code)
	}

	// Plain users cannot create products at all.
	user := s.createUser(t, "u@x.com", models.RoleUser)
	w = s.request(t, http.MethodPost, "/products", s.tokenFor(t, user), productBody("broth", restA.ID))
	if w.Code != http.StatusForbidden {
		t.Errorf("plain user: got %d, want 403", w.Code)
	}
}

func TestCreateProductDuplicateName(t *testing.T) {
	s := newTestServer(t)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)
	restaurant := s.createRestaurant(t, "bistro", owner.ID)
	s.createProduct(t, "pizza", 500, restaurant.ID)

	w := s.request(t, http.MethodPost, "/products", s.tokenFor(t, owner), productBody("pizza", restaurant.ID))
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate name: got %d %s, want 400", w.Code, w.Body.String())
	}
}

func TestUpdateProductOwnershipScoping(t *testing.T) {
	s := newTestServer(t)
	ownerA := s.createUser(t, "a@x.com", models.RoleOwner)
	ownerB := s.createUser(t, "b@x.com", models.RoleOwner)
	s.createRestaurant(t, "rest-a", ownerA.ID)
	restB := s.createRestaurant(t, "rest-b", ownerB.ID)
	product := s.createProduct(t, "burger", 700, restB.ID)

	update := map[string]interface{}{
		"name":          "burger deluxe",
		"price":         800,
		"restaurant_id": restB.ID,
	}

	// Owner A owns restaurant 1 only; the product belongs to restaurant 2.
	w := s.request(t, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), s.tokenFor(t, ownerA), update)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign owner: got %d %s, want 403", w.Code, w.Body.String())
	}

	w = s.request(t, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), s.tokenFor(t, ownerB), update)
	if w.Code != http.StatusOK {
		t.Errorf("owning owner: got %d %s", w.Code, w.Body.String())
	}

	var updated models.Product
	decode(t, w, &updated)
	if updated.Name != "burger deluxe" || updated.Price != 800 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestUpdateProductOwnerWithNoRestaurants(t *testing.T) {
	s := newTestServer(t)
	landlord := s.createUser(t, "l@x.com", models.RoleOwner)
	owner := s.createUser(t, "empty@x.com", models.RoleOwner)
	restaurant := s.createRestaurant(t, "bistro", landlord.ID)
	product := s.createProduct(t, "pizza", 500, restaurant.ID)

	w := s.request(t, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), s.tokenFor(t, owner),
		productBody("pizza 2", restaurant.ID))
	if w.Code != http.StatusNotFound {
		t.Errorf("empty owner set: got %d, want 404", w.Code)
	}
}

func TestListProductsAdminOnly(t *testing.T) {
	s := newTestServer(t)
	admin := s.createUser(t, "admin@x.com", models.RoleAdmin)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)

	w := s.request(t, http.MethodGet, "/products", s.tokenFor(t, owner), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("owner on admin endpoint: got %d, want 403", w.Code)
	}

	w = s.request(t, http.MethodGet, "/products", s.tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Errorf("admin: got %d %s", w.Code, w.Body.String())
	}
}

func TestListProductsByRestaurant(t *testing.T) {
	s := newTestServer(t)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)
	user := s.createUser(t, "u@x.com", models.RoleUser)
	restaurant := s.createRestaurant(t, "bistro", owner.ID)
	s.createProduct(t, "pizza", 500, restaurant.ID)
	s.createProduct(t, "salad", 300, restaurant.ID)

	// Menu browsing requires authentication but no particular role.
	w := s.request(t, http.MethodGet, fmt.Sprintf("/products/restaurant/%d", restaurant.ID), s.tokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("menu: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}
	decode(t, w, &resp)
	if resp.Total != 2 || len(resp.Products) != 2 {
		t.Errorf("menu contents: %+v", resp)
	}

	w = s.request(t, http.MethodGet, fmt.Sprintf("/products/restaurant/%d", restaurant.ID), "", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("unauthenticated menu: got %d, want 403", w.Code)
	}
}
