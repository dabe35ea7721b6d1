package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"nestly/internal/domain/entity"
	domainerrors "nestly/internal/domain/errors"
	"nestly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_Signup_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		registerOutput: &usecase.RegisterOutput{
			User: &entity.User{
				ID:       "650000000000000000000001",
				Username: "a",
				Email:    "a@x.com",
				Password: "$2a$10$hashhashhash",
				RoleID:   entity.RoleNormalUser,
			},
		},
	}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/signup", `{"username":"a","email":"a@x.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a", body["username"])
	assert.Equal(t, "a@x.com", body["email"])
	// The stored hash comes back in the response body.
	assert.Equal(t, "$2a$10$hashhashhash", body["password"])
	assert.EqualValues(t, 1, body["roleId"])

	require.NotNil(t, uc.gotRegister)
	assert.Equal(t, "secret", uc.gotRegister.Password)
}

func TestAccountHandler_Signup_Duplicate(t *testing.T) {
	uc := &stubAccountUsecase{registerErr: domainerrors.ErrAccountExists}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/signup", `{"username":"a","email":"a@x.com","password":"secret"}`)

	// Validation misses are 200s with a message, not 4xx.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, rec.Body.String())
}

func TestAccountHandler_Signup_ShortPassword(t *testing.T) {
	uc := &stubAccountUsecase{registerErr: domainerrors.ErrPasswordTooShort}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/signup", `{"username":"a","email":"a@x.com","password":"1234"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password must be at least 8 characters"}`, rec.Body.String())
}

func TestAccountHandler_Signup_StoreFailure(t *testing.T) {
	uc := &stubAccountUsecase{registerErr: errors.New("connection reset")}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/signup", `{"username":"a","email":"a@x.com","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		loginOutput: &usecase.LoginOutput{
			Token:  "signed.jwt.token",
			RoleID: entity.RoleNormalUser,
		},
	}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/login", `{"username":"a","email":"a@x.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successful login","token":"signed.jwt.token","roleId":1}`, rec.Body.String())
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubAccountUsecase{loginErr: domainerrors.ErrInvalidCredentials}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/login", `{"username":"a","email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid data"}`, rec.Body.String())
}

func TestAccountHandler_Login_WrappedCredentialErrorStillMapsTo401(t *testing.T) {
	uc := &stubAccountUsecase{
		loginErr: errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"),
	}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/login", `{"username":"a","email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_Login_StoreFailure(t *testing.T) {
	uc := &stubAccountUsecase{loginErr: errors.New("server selection timeout")}
	e := newTestEcho()
	registerAccountRoutes(e, uc)

	rec := doJSON(t, e, http.MethodPost, "/login", `{"username":"a","email":"a@x.com","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}
