package api

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepheart/deepheart-api/mocks"
	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/store"
)

func withUser(u *schema.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", u)
		c.Next()
	}
}

func newDoctor() *schema.User {
	return &schema.User{ID: uuid.New(), Email: "doctor@example.com", Name: "Dr. Chen", Role: schema.RoleDoctor}
}

func newPatientOf(doctor *schema.User) *schema.User {
	doctorID := doctor.ID
	return &schema.User{ID: uuid.New(), Email: "patient@example.com", Name: "Lin", Role: schema.RolePatient, DoctorID: &doctorID}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequestJWT(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	a := mocks.NewMockDeepHeartCore(ctl)
	s := Server{store: a, jwtPrivateKey: key}

	doctor := newDoctor()
	a.EXPECT().Authenticate("doctor@example.com", "secret-password").Return(doctor, nil).Times(1)
	a.EXPECT().GetUser(doctor.ID).Return(doctor, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth", s.requestJWT)
	router.GET("/me", s.authMiddleware(), s.recognizeUserMiddleware(), s.userDetail)

	body := []byte(`{"email":"doctor@example.com","password":"secret-password"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/auth", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var authResp struct {
		Token    string      `json:"jwt_token"`
		ExpireIn float64     `json:"expire_in"`
		User     schema.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authResp))
	assert.NotEmpty(t, authResp.Token)
	assert.Equal(t, float64(3600), authResp.ExpireIn)
	assert.Equal(t, doctor.ID, authResp.User.ID)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+authResp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var meResp struct {
		Result schema.User `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meResp))
	assert.Equal(t, doctor.Email, meResp.Result.Email)
	assert.Equal(t, schema.RoleDoctor, meResp.Result.Role)
}

func TestRequestJWTInvalidCredentials(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockDeepHeartCore(ctl)
	s := Server{store: a}

	a.EXPECT().Authenticate("doctor@example.com", "wrong-password").Return(nil, store.ErrInvalidCredentials).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth", s.requestJWT)

	body := []byte(`{"email":"doctor@example.com","password":"wrong-password"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/auth", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidCredentials, decodeError(t, w))
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	s := Server{jwtPrivateKey: key}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.authMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidAuthorizationFormat, decodeError(t, w))

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	foreign := Server{jwtPrivateKey: other}
	token, _, err := foreign.issueToken(newDoctor())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, "token signed by another key is accepted")
}

func TestRoleGateway(t *testing.T) {
	s := Server{}
	doctor := newDoctor()
	patient := newPatientOf(doctor)

	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		user   *schema.User
		status int
	}{
		{doctor, http.StatusOK},
		{&schema.User{ID: uuid.New(), Role: schema.RoleAdmin}, http.StatusOK},
		{patient, http.StatusForbidden},
	} {
		router := gin.New()
		router.Use(withUser(tc.user))
		router.GET("/", s.roleGateway(schema.RoleDoctor, schema.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, tc.status, w.Code, "wrong status code for %s", tc.user.Role)
	}
}
