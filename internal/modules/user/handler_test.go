package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/credential"
)

func setupTestRouter(t *testing.T) (*chi.Mux, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := setupMockDB(t)
	hasher, err := credential.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	router := chi.NewRouter()
	svc := NewService(NewPostgresRepository(db, time.Second), hasher)
	NewHandler(svc, zap.NewNop()).RegisterRoutes(router)
	return router, mock
}

func register(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/users/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("INSERT INTO usersdb").
		WithArgs("alice", "alice@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	rec := register(router, `{"username":"alice","email":"alice@example.com","password":"Secret1!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Secret1!")
	assert.NotContains(t, rec.Body.String(), "password")

	var body struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User Added:", body.Message)
	assert.Equal(t, "alice", body.User["username"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleRegister_TwiceConflicts(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("INSERT INTO usersdb").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	mock.ExpectQuery("INSERT INTO usersdb").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	body := `{"username":"alice","email":"alice@example.com","password":"Secret1!"}`
	first := register(router, body)
	second := register(router, body)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.JSONEq(t, `{"errors":{"email":"Email or username already exists"}}`, second.Body.String())
}

func TestHandleRegister_StoreFailure(t *testing.T) {
	router, mock := setupTestRouter(t)
	mock.ExpectQuery("INSERT INTO usersdb").WillReturnError(errors.New(`pq: relation "usersdb" does not exist`))

	rec := register(router, `{"username":"alice","email":"alice@example.com","password":"Secret1!"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database Error: User Insert Error"}`, rec.Body.String())
}

func TestHandleRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"AllBad", `{"username":"","email":"bad","password":""}`, `{"error":"Username field is empty."}`},
		{"MissingUsername", `{"email":"a@example.com","password":"x"}`, `{"error":"Username field is empty."}`},
		{"EmailEmpty", `{"username":"bob","password":"x"}`,
			`{"error":"Email field is empty.","errors":{"email":"Email is empty."}}`},
		{"EmailInvalid", `{"username":"bob","email":"bob@","password":""}`,
			`{"error":"Email did not match format","errors":{"email":"Email not valid."}}`},
		{"PasswordEmpty", `{"username":"bob","email":"bob@example.com","password":""}`,
			`{"error":"Password field is empty.","errors":{"password":"Password empty."}}`},
		{"PasswordInvalid", `{"username":"bob","email":"bob@example.com","password":"no spaces"}`,
			`{"error":"Password did not match regex","errors":{"password":"Password not valid."}}`},
		{"BadJSON", `{"username":`, `{"error":"Invalid request body."}`},
		{"WrongType", `{"username":42}`, `{"error":"Invalid request body."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mock := setupTestRouter(t)

			rec := register(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandleRegister_LongPassword(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("INSERT INTO usersdb").
		WithArgs("bob", "bob@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, time.Now()))

	password := strings.Repeat("a", 73)
	rec := register(router, `{"username":"bob","email":"bob@example.com","password":"`+password+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type failingService struct{ err error }

func (s failingService) Register(context.Context, string, string, string) (*User, error) {
	return nil, s.err
}

func TestHandleRegister_HashFailure(t *testing.T) {
	router := chi.NewRouter()
	err := apperr.Internal(credential.CodeHashFailure, errors.New("bcrypt: cost out of range"))
	NewHandler(failingService{err: err}, zap.NewNop()).RegisterRoutes(router)

	rec := register(router, `{"username":"alice","email":"alice@example.com","password":"Secret1!"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "Database")
}
