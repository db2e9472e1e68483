package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cvargas352/Projeto-integrador-final/controllers"
	"github.com/cvargas352/Projeto-integrador-final/database"
	"github.com/cvargas352/Projeto-integrador-final/models"
	"github.com/cvargas352/Projeto-integrador-final/utils"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	userCtrl := controllers.NewUserController(db)
	r.POST("/users/register", userCtrl.Register)
	r.POST("/users/login", userCtrl.Login)
	r.GET("/users/:user_id", userCtrl.GetUser)
	r.PUT("/users/:user_id", userCtrl.UpdateUser)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndDuplicateEmailConflict(t *testing.T) {
	utils.InitLogger()
	db := setupUserTestDB(t)
	r := setupUserRouter(db)

	payload := map[string]interface{}{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"phone":    "11 99999-0000",
		"password": "segredo1",
		"role":     "customer",
	}
	w := postJSON(t, r, "POST", "/users/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second registration with the same e-mail must conflict.
	payload["name"] = "Impostora"
	w = postJSON(t, r, "POST", "/users/register", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	// And the first row is untouched.
	var user models.User
	assert.NoError(t, db.Where("email = ?", "maria@example.com").First(&user).Error)
	assert.Equal(t, "Maria Silva", user.Name)
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupUserTestDB(t)
	r := setupUserRouter(db)

	w := postJSON(t, r, "POST", "/users/register", map[string]interface{}{
		"name":     "Zé",
		"email":    "ze@example.com",
		"password": "segredo1",
		"role":     "driver",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSuccessAndGenericFailure(t *testing.T) {
	db := setupUserTestDB(t)
	r := setupUserRouter(db)

	postJSON(t, r, "POST", "/users/register", map[string]interface{}{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "segredo1",
		"role":     "customer",
	})

	w := postJSON(t, r, "POST", "/users/login", map[string]interface{}{
		"email":    "maria@example.com",
		"password": "segredo1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	profile := data["user"].(map[string]interface{})
	assert.Equal(t, "maria@example.com", profile["email"])
	_, leaked := profile["password"]
	assert.False(t, leaked, "password hash must never be serialized")

	// Wrong password and unknown e-mail answer the same way.
	w = postJSON(t, r, "POST", "/users/login", map[string]interface{}{
		"email": "maria@example.com", "password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = postJSON(t, r, "POST", "/users/login", map[string]interface{}{
		"email": "ninguem@example.com", "password": "segredo1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAndUpdateProfile(t *testing.T) {
	db := setupUserTestDB(t)
	r := setupUserRouter(db)

	w := postJSON(t, r, "POST", "/users/register", map[string]interface{}{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "segredo1",
		"role":     "customer",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ := http.NewRequest("GET", "/users/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/users/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Name and phone are editable; role and e-mail stay put.
	w = postJSON(t, r, "PUT", "/users/1", map[string]interface{}{
		"name":  "Maria S. Oliveira",
		"phone": "11 98888-7777",
		"email": "hacker@example.com",
		"role":  "restaurant",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var user models.User
	assert.NoError(t, db.First(&user, 1).Error)
	assert.Equal(t, "Maria S. Oliveira", user.Name)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, models.RoleCustomer, user.Role)

	w = postJSON(t, r, "PUT", "/users/999", map[string]interface{}{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
