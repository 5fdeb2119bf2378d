package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aanjanaji/physio-api/internal/config"
	"github.com/aanjanaji/physio-api/internal/models"
	"github.com/aanjanaji/physio-api/internal/routes"
	"github.com/aanjanaji/physio-api/internal/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		ServerPort:    "0",
		AdminEmail:    "admin@aanjanaji.com",
		AdminPassword: "admin123",
	}

	st := store.New()
	if err := store.Seed(st, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, st, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
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
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func loginAs(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	return resp.Token
}

// ----- auth -----

func TestSignup(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"phone":     "+15550001111",
		"password":  "secret123",
	}, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if strings.Contains(strings.ToLower(w.Body.String()), "password") {
		t.Fatalf("response leaks password field: %s", w.Body.String())
	}

	var resp struct {
		User models.User `json:"user"`
	}
	decode(t, w, &resp)
	if resp.User.Role != models.RolePatient {
		t.Fatalf("role = %q, want patient", resp.User.Role)
	}
	if !resp.User.IsActive {
		t.Fatal("new user must be active")
	}
}

func TestSignupValidation(t *testing.T) {
	r := newTestServer(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing first name", gin.H{"lastName": "D", "email": "a@b.com", "password": "secret123"}},
		{"bad email", gin.H{"firstName": "J", "lastName": "D", "email": "nope", "password": "secret123"}},
		{"short password", gin.H{"firstName": "J", "lastName": "D", "email": "a@b.com", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/signup", tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestServer(t)

	body := gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "dup@example.com",
		"password":  "secret123",
	}

	if w := doJSON(t, r, http.MethodPost, "/api/auth/signup", body, ""); w.Code != http.StatusCreated {
		t.Fatalf("first signup: %d", w.Code)
	}
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", body, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second signup: status %d body %s", w.Code, w.Body.String())
	}
}

func TestLoginAdminAlias(t *testing.T) {
	r := newTestServer(t)

	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("me: status %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		User models.User `json:"user"`
	}
	decode(t, w, &resp)
	if resp.User.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", resp.User.Role)
	}
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	r := newTestServer(t)

	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "patient@example.com",
		"password": "wrongpass",
	}, "")
	noUser := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever1",
	}, "")

	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses %d and %d, want 401", wrongPass.Code, noUser.Code)
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Fatalf("bodies differ:\n%s\n%s", wrongPass.Body.String(), noUser.Body.String())
	}
}

// ----- appointments -----

func TestCreateAppointment(t *testing.T) {
	r := newTestServer(t)

	body := gin.H{
		"firstName":     "Jane",
		"lastName":      "Doe",
		"email":         "jane@example.com",
		"phone":         "+15550001111",
		"service":       "Sports Injury Rehabilitation",
		"preferredDate": "2026-09-15",
		"preferredTime": "10:00 AM",
	}

	w1 := doJSON(t, r, http.MethodPost, "/api/appointments", body, "")
	if w1.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w1.Code, w1.Body.String())
	}
	var a1 models.Appointment
	decode(t, w1, &a1)
	if a1.Status != "pending" {
		t.Fatalf("status = %q, want pending", a1.Status)
	}

	w2 := doJSON(t, r, http.MethodPost, "/api/appointments", body, "")
	var a2 models.Appointment
	decode(t, w2, &a2)
	if a2.ID <= a1.ID {
		t.Fatalf("ids not increasing: %d then %d", a1.ID, a2.ID)
	}
}

func TestAppointmentValidation(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"firstName": "Jane",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
}

func TestAppointmentAdminFlow(t *testing.T) {
	r := newTestServer(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"firstName":     "Jane",
		"lastName":      "Doe",
		"email":         "jane@example.com",
		"phone":         "+15550001111",
		"service":       "Manual Therapy",
		"preferredDate": "2026-09-20",
		"preferredTime": "2:00 PM",
	}, "")
	var created models.Appointment
	decode(t, w, &created)

	list := doJSON(t, r, http.MethodGet, "/api/appointments", nil, token)
	if list.Code != http.StatusOK {
		t.Fatalf("list: status %d", list.Code)
	}
	var all []models.Appointment
	decode(t, list, &all)
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("expected created appointment in list, got %v", all)
	}

	get := doJSON(t, r, http.MethodGet, "/api/appointments/1", nil, token)
	if get.Code != http.StatusOK {
		t.Fatalf("get: status %d", get.Code)
	}

	missing := doJSON(t, r, http.MethodGet, "/api/appointments/999", nil, token)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("missing: status %d", missing.Code)
	}

	patch := doJSON(t, r, http.MethodPatch, "/api/appointments/1/status", gin.H{"status": "confirmed"}, token)
	if patch.Code != http.StatusOK {
		t.Fatalf("patch: status %d body %s", patch.Code, patch.Body.String())
	}
	var updated models.Appointment
	decode(t, patch, &updated)
	if updated.Status != "confirmed" {
		t.Fatalf("status = %q", updated.Status)
	}

	bad := doJSON(t, r, http.MethodPatch, "/api/appointments/1/status", gin.H{"status": "done"}, token)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("bad status: %d body %s", bad.Code, bad.Body.String())
	}
}

// ----- testimonials -----

func TestTestimonialValidation(t *testing.T) {
	r := newTestServer(t)
	token := loginAs(t, r, "admin", "admin123")

	tests := []struct {
		name string
		body gin.H
	}{
		{"rating too high", gin.H{"name": "X", "occupation": "Y", "rating": 6, "review": "fine"}},
		{"rating too low", gin.H{"name": "X", "occupation": "Y", "rating": 0, "review": "fine"}},
		{"missing review", gin.H{"name": "X", "occupation": "Y", "rating": 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/testimonials", tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d body %s", w.Code, w.Body.String())
			}
		})
	}

	// nothing was created beyond the 5 seeded records
	all := doJSON(t, r, http.MethodGet, "/api/testimonials/all", nil, token)
	var list []models.Testimonial
	decode(t, all, &list)
	if len(list) != 5 {
		t.Fatalf("expected 5 testimonials, got %d", len(list))
	}
}

func TestTestimonialVisibleImmediately(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/testimonials", gin.H{
		"name":       "New Patient",
		"occupation": "Teacher",
		"rating":     5,
		"review":     "Wonderful care from start to finish.",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var created models.Testimonial
	decode(t, w, &created)
	if !created.IsApproved {
		t.Fatal("testimonial must be auto-approved")
	}

	listed := doJSON(t, r, http.MethodGet, "/api/testimonials", nil, "")
	var list []models.Testimonial
	decode(t, listed, &list)

	found := false
	for _, item := range list {
		if item.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("created testimonial not in approved listing")
	}
}

// ----- blog -----

func TestBlogPostsSortedNewestFirst(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/blog-posts", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var posts []models.BlogPost
	decode(t, w, &posts)
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Fatalf("posts out of order at index %d", i)
		}
	}
}

func TestBlogPostByID(t *testing.T) {
	r := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/api/blog-posts/1", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/blog-posts/99", nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestBlogPostCreateIsAdminOnly(t *testing.T) {
	r := newTestServer(t)
	admin := loginAs(t, r, "admin", "admin123")
	patient := loginAs(t, r, "patient@example.com", "patient123")

	body := gin.H{
		"title":    "Recovering From an Ankle Sprain",
		"excerpt":  "What the first two weeks should look like...",
		"content":  "Ankle sprains heal best with early, gentle loading...",
		"category": "Recovery",
		"imageUrl": "https://example.com/ankle.jpg",
	}

	if w := doJSON(t, r, http.MethodPost, "/api/blog-posts", body, patient); w.Code != http.StatusForbidden {
		t.Fatalf("patient create: status %d", w.Code)
	}
	w := doJSON(t, r, http.MethodPost, "/api/blog-posts", body, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create: status %d body %s", w.Code, w.Body.String())
	}

	listed := doJSON(t, r, http.MethodGet, "/api/blog-posts", nil, "")
	var posts []models.BlogPost
	decode(t, listed, &posts)
	if len(posts) != 4 {
		t.Fatalf("expected 4 posts, got %d", len(posts))
	}
	if posts[0].Title != "Recovering From an Ankle Sprain" {
		t.Fatalf("just-published post should sort first, got %q", posts[0].Title)
	}
}

// ----- contact -----

func TestContactRoundTrip(t *testing.T) {
	r := newTestServer(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Curious Visitor",
		"email":   "visitor@example.com",
		"subject": "Opening hours",
		"message": "Are you open on Saturdays?",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var created models.ContactMessage
	decode(t, w, &created)
	if created.IsRead {
		t.Fatal("new message must be unread")
	}

	listed := doJSON(t, r, http.MethodGet, "/api/contact-messages", nil, token)
	if listed.Code != http.StatusOK {
		t.Fatalf("list: status %d", listed.Code)
	}
	var list []models.ContactMessage
	decode(t, listed, &list)
	if len(list) != 1 || list[0].ID != created.ID || list[0].IsRead {
		t.Fatalf("unexpected listing: %v", list)
	}

	read := doJSON(t, r, http.MethodPatch, "/api/contact-messages/1/read", nil, token)
	if read.Code != http.StatusOK {
		t.Fatalf("mark read: status %d", read.Code)
	}
	var marked models.ContactMessage
	decode(t, read, &marked)
	if !marked.IsRead {
		t.Fatal("message should be read")
	}
}

// ----- authorization -----

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	r := newTestServer(t)
	patient := loginAs(t, r, "patient@example.com", "patient123")

	paths := []string{
		"/api/appointments",
		"/api/testimonials/all",
		"/api/contact-messages",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			if w := doJSON(t, r, http.MethodGet, path, nil, ""); w.Code != http.StatusUnauthorized {
				t.Fatalf("no token: status %d", w.Code)
			}
			if w := doJSON(t, r, http.MethodGet, path, nil, "not-a-jwt"); w.Code != http.StatusUnauthorized {
				t.Fatalf("garbage token: status %d", w.Code)
			}
			if w := doJSON(t, r, http.MethodGet, path, nil, patient); w.Code != http.StatusForbidden {
				t.Fatalf("patient token: status %d", w.Code)
			}
		})
	}
}
