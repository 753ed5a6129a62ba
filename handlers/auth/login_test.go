package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arjunnair2005/dasG/migrations"
	"github.com/Arjunnair2005/dasG/seed"
	"github.com/Arjunnair2005/dasG/utils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T, name string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := utils.Connect("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := gin.New()
	r.POST("/api/login", NewHandler(db).Login)
	return r
}

func doLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(gin.H{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_AdminSuccess(t *testing.T) {
	r := setupRouter(t, "loginadmin")

	w := doLogin(t, r, "admin", "admin123")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != "admin" {
		t.Fatalf("role = %q, want admin", resp.Role)
	}
	role, err := utils.ParseToken(resp.Token)
	if err != nil || role != "admin" {
		t.Fatalf("token not valid for admin: role=%q err=%v", role, err)
	}
}

func TestLogin_AdminWrongPassword(t *testing.T) {
	r := setupRouter(t, "loginadminbad")

	w := doLogin(t, r, "admin", "letmein")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Fatalf("expected error message in body: %s", w.Body.String())
	}
}

func TestLogin_StudentRollNoAnyPassword(t *testing.T) {
	r := setupRouter(t, "loginstudent")

	// Roll-number logins are matched without a password check.
	for _, password := range []string{"", "whatever"} {
		w := doLogin(t, r, "BCA001", password)
		if w.Code != http.StatusOK {
			t.Fatalf("password %q: status = %d, want 200", password, w.Code)
		}

		var resp struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Role != "student" {
			t.Fatalf("role = %q, want student", resp.Role)
		}
		if role, err := utils.ParseToken(resp.Token); err != nil || role != "student" {
			t.Fatalf("token not valid for student: role=%q err=%v", role, err)
		}
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	r := setupRouter(t, "loginunknown")

	w := doLogin(t, r, "nobody", "nothing")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
