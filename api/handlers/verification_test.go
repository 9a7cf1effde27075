package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"board/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func postJSON(router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func issuedCode(t *testing.T, orm *gorm.DB, phone string) int {
	t.Helper()
	var user models.User
	require.NoError(t, orm.Where("phone = ?", phone).First(&user).Error)
	return user.Code
}

func TestSendCodeAndVerify(t *testing.T) {
	router, orm := setupRouter(t)
	phone := gofakeit.Phone()

	w := postJSON(router, "/send_code", map[string]string{"phone": phone, "name": gofakeit.FirstName()})
	require.Equal(t, http.StatusOK, w.Code)

	code := issuedCode(t, orm, phone)
	assert.GreaterOrEqual(t, code, 1000)
	assert.LessOrEqual(t, code, 9999)

	w = postJSON(router, "/verify_code", map[string]string{"phone": phone, "code": fmt.Sprintf("%d", code)})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "message")
}

func TestVerifyCodeMismatch(t *testing.T) {
	router, orm := setupRouter(t)
	phone := gofakeit.Phone()

	w := postJSON(router, "/send_code", map[string]string{"phone": phone, "name": "Ali"})
	require.Equal(t, http.StatusOK, w.Code)

	// Гарантированно неверный код в пределах диапазона
	wrong := issuedCode(t, orm, phone) + 1
	if wrong > 9999 {
		wrong = 1000
	}

	w = postJSON(router, "/verify_code", map[string]string{"phone": phone, "code": fmt.Sprintf("%d", wrong)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "detail")
}

func TestVerifyUnknownPhone(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(router, "/verify_code", map[string]string{"phone": "0500000000", "code": "1234"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyNonNumericCode(t *testing.T) {
	router, _ := setupRouter(t)
	phone := gofakeit.Phone()

	w := postJSON(router, "/send_code", map[string]string{"phone": phone, "name": "Ali"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/verify_code", map[string]string{"phone": phone, "code": "12ab"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendCodeOverwrites(t *testing.T) {
	router, orm := setupRouter(t)
	phone := gofakeit.Phone()

	w := postJSON(router, "/send_code", map[string]string{"phone": phone, "name": "Old Name"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/send_code", map[string]string{"phone": phone, "name": "New Name"})
	require.Equal(t, http.StatusOK, w.Code)

	// На номер приходится ровно одна запись, имя перезаписано
	var count int64
	require.NoError(t, orm.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var user models.User
	require.NoError(t, orm.Where("phone = ?", phone).First(&user).Error)
	assert.Equal(t, "New Name", user.Name)

	// Актуальный код принимается
	w = postJSON(router, "/verify_code", map[string]string{"phone": phone, "code": fmt.Sprintf("%d", user.Code)})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendCodeInvalidRequest(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(router, "/send_code", map[string]string{"phone": "0501234567"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
