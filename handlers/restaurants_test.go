package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"restaurant-order-api/models"
)

func restaurantBody(name, email string) map[string]interface{} {
	return map[string]interface{}{
		"name":    name,
		"address": "1 Main St",
		"city":    "Town",
		"country": "Land",
		"email":   email,
	}
}

func TestListRestaurantsIsPublic(t *testing.T) {
	s := newTestServer(t)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)
	s.createRestaurant(t, "bistro", owner.ID)

	w := s.request(t, http.MethodGet, "/restaurants", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public list: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Total       int64               `json:"total"`
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	decode(t, w, &resp)
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}

	w = s.request(t, http.MethodGet, fmt.Sprintf("/restaurants/%d", resp.Restaurants[0].ID), "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("public get: %d %s", w.Code, w.Body.String())
	}
}

func TestCreateRestaurantRoles(t *testing.T) {
	s := newTestServer(t)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)
	user := s.createUser(t, "u@x.com", models.RoleUser)

	w := s.request(t, http.MethodPost, "/restaurants", s.tokenFor(t, user), restaurantBody("nope", "nope@x.com"))
	if w.Code != http.StatusForbidden {
		t.Errorf("plain user create: got %d, want 403", w.Code)
	}

	w = s.request(t, http.MethodPost, "/restaurants", s.tokenFor(t, owner), restaurantBody("bistro", "bistro@x.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("owner create: %d %s", w.Code, w.Body.String())
	}
	var created models.Restaurant
	decode(t, w, &created)
	if created.OwnerID != owner.ID {
		t.Errorf("owner = %d, want %d", created.OwnerID, owner.ID)
	}
	if created.Status != models.RestaurantUnderReview {
		t.Errorf("status = %s, want under_review", created.Status)
	}
}

func TestCreateRestaurantDuplicateNameOrEmail(t *testing.T) {
	s := newTestServer(t)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)
	s.createRestaurant(t, "bistro", owner.ID)

	// createRestaurant uses <name>@example.com as the email.
	w := s.request(t, http.MethodPost, "/restaurants", s.tokenFor(t, owner), restaurantBody("bistro", "fresh@x.com"))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "already exists") {
		t.Errorf("duplicate name: %d %s", w.Code, w.Body.String())
	}

	w = s.request(t, http.MethodPost, "/restaurants", s.tokenFor(t, owner), restaurantBody("fresh", "bistro@example.com"))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "already exists") {
		t.Errorf("duplicate email: %d %s", w.Code, w.Body.String())
	}
}

func TestAdminCreatesRestaurantForOwner(t *testing.T) {
	s := newTestServer(t)
	admin := s.createUser(t, "admin@x.com", models.RoleAdmin)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)

	body := restaurantBody("delegated", "delegated@x.com")
	body["owner_id"] = owner.ID
	w := s.request(t, http.MethodPost, "/restaurants", s.tokenFor(t, admin), body)
	if w.Code != http.StatusOK {
		t.Fatalf("admin create: %d %s", w.Code, w.Body.String())
	}
	var created models.Restaurant
	decode(t, w, &created)
	if created.OwnerID != owner.ID {
		t.Errorf("owner = %d, want %d", created.OwnerID, owner.ID)
	}
}

func TestUpdateRestaurantScoping(t *testing.T) {
	s := newTestServer(t)
	ownerA := s.createUser(t, "a@x.com", models.RoleOwner)
	ownerB := s.createUser(t, "b@x.com", models.RoleOwner)
	admin := s.createUser(t, "admin@x.com", models.RoleAdmin)
	s.createRestaurant(t, "rest-a", ownerA.ID)
	restB := s.createRestaurant(t, "rest-b", ownerB.ID)

	update := restaurantBody("rest-b", "rest-b@example.com")

	w := s.request(t, http.MethodPut, fmt.Sprintf("/restaurants/%d", restB.ID), s.tokenFor(t, ownerA), update)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign owner: got %d, want 403", w.Code)
	}

	w = s.request(t, http.MethodPut, fmt.Sprintf("/restaurants/%d", restB.ID), s.tokenFor(t, ownerB), update)
	if w.Code != http.StatusOK {
		t.Errorf("owning owner: got %d %s", w.Code, w.Body.String())
	}

	// Admin owns nothing yet may edit anyone's restaurant.
	w = s.request(t, http.MethodPut, fmt.Sprintf("/restaurants/%d", restB.ID), s.tokenFor(t, admin), update)
	if w.Code != http.StatusOK {
		t.Errorf("admin: got %d %s", w.Code, w.Body.String())
	}
}

func TestUpdateRestaurantOwnerWithNoRestaurants(t *testing.T) {
	s := newTestServer(t)
	landlord := s.createUser(t, "l@x.com", models.RoleOwner)
	owner := s.createUser(t, "empty@x.com", models.RoleOwner)
	restaurant := s.createRestaurant(t, "bistro", landlord.ID)

	// 404 with the same body whether or not the target exists.
	w := s.request(t, http.MethodPut, fmt.Sprintf("/restaurants/%d", restaurant.ID), s.tokenFor(t, owner),
		restaurantBody("bistro", "bistro@example.com"))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "No restaurants found for this owner") {
		t.Errorf("empty owner set: %d %s", w.Code, w.Body.String())
	}

	w = s.request(t, http.MethodPut, "/restaurants/424242", s.tokenFor(t, owner),
		restaurantBody("ghost", "ghost@x.com"))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "No restaurants found for this owner") {
		t.Errorf("absent target: %d %s", w.Code, w.Body.String())
	}
}

func TestMyRestaurants(t *testing.T) {
	s := newTestServer(t)
	ownerA := s.createUser(t, "a@x.com", models.RoleOwner)
	ownerB := s.createUser(t, "b@x.com", models.RoleOwner)
	user := s.createUser(t, "u@x.com", models.RoleUser)
	s.createRestaurant(t, "rest-a", ownerA.ID)
	s.createRestaurant(t, "rest-b", ownerB.ID)

	w := s.request(t, http.MethodGet, "/restaurants/me", s.tokenFor(t, ownerA), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mine: %d %s", w.Code, w.Body.String())
	}
	var mine []models.Restaurant
	decode(t, w, &mine)
	if len(mine) != 1 || mine[0].Name != "rest-a" {
		t.Errorf("mine = %+v", mine)
	}

	w = s.request(t, http.MethodGet, "/restaurants/me", s.tokenFor(t, user), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("plain user: got %d, want 403", w.Code)
	}
}

func TestDeleteRestaurantScoping(t *testing.T) {
	s := newTestServer(t)
	owner := s.createUser(t, "o@x.com", models.RoleOwner)
	other := s.createUser(t, "other@x.com", models.RoleOwner)
	restaurant := s.createRestaurant(t, "bistro", owner.ID)
	s.createRestaurant(t, "other-place", other.ID)

	w := s.request(t, http.MethodDelete, fmt.Sprintf("/restaurants/%d", restaurant.ID), s.tokenFor(t, other), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign owner: got %d, want 403", w.Code)
	}

	w = s.request(t, http.MethodDelete, fmt.Sprintf("/restaurants/%d", restaurant.ID), s.tokenFor(t, owner), nil)
	if w.Code != http.StatusOK {
		t.Errorf("owning owner: got %d %s", w.Code, w.Body.String())
	}
}
