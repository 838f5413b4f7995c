package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pagehelm/internal/store"
	"pagehelm/models"
)

var testDBCounter atomic.Int64

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dsn := fmt.Sprintf("file:server-test-%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&models.User{}, &models.Page{}, &models.Plan{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(db)
	if _, err := st.CreateUser(context.Background(), "captain@pagehelm.test", "Captain", "password123", models.RoleAdmin, ""); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := st.SeedHomePage(context.Background()); err != nil {
		t.Fatalf("seed home page: %v", err)
	}

	srv, err := New(Config{Addr: ":0", Store: st})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func TestRouterRegistersHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("/healthz = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestUnauthenticatedAppRedirectsToLogin(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app", nil))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("/app = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Fatalf("location = %q", loc)
	}
}

func TestLoginFlow(t *testing.T) {
	srv := newTestServer(t)

	form := url.Values{"email": {"captain@pagehelm.test"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("login = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/app" {
		t.Fatalf("location = %q", loc)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}

	appReq := httptest.NewRequest(http.MethodGet, "/app", nil)
	for _, cookie := range cookies {
		appReq.AddCookie(cookie)
	}
	appRR := httptest.NewRecorder()
	srv.Handler().ServeHTTP(appRR, appReq)

	if appRR.Code != http.StatusOK {
		t.Fatalf("authenticated /app = %d, want 200", appRR.Code)
	}
	if !strings.Contains(appRR.Body.String(), "Captain") {
		t.Fatal("dashboard missing the signed-in user")
	}
}

func TestPublicHomeRenders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("/ = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `id="section-hero"`) {
		t.Fatal("home page missing the hero section")
	}
}

func TestDraftPageIsHiddenFromPublic(t *testing.T) {
	srv := newTestServer(t)

	page, err := srv.config.Store.CreatePage(context.Background(), "Quiet Launch")
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	slug := strings.TrimPrefix(page.URL, "/p/")

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/p/"+slug, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("draft page = %d, want 404", rr.Code)
	}

	if err := srv.config.Store.SetPageStatus(context.Background(), page.PageID, models.PageStatusPublished); err != nil {
		t.Fatalf("publish: %v", err)
	}
	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/p/"+slug, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("published page = %d, want 200", rr.Code)
	}
}
