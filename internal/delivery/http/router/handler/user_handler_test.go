package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutortrack/internal/delivery/http/validator"
	"tutortrack/internal/domain/entity"
	domainerrors "tutortrack/internal/domain/errors"
	"tutortrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetUser(t *testing.T) {
	fake := &fakeUserUsecase{user: &entity.RegisteredUser{Name: "Ana", Email: "ana@example.com"}}
	h := NewUserHandler(fake, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/register-user/ana@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("ana@example.com")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	fake := &fakeUserUsecase{err: domainerrors.ErrUserNotFound}
	h := NewUserHandler(fake, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/register-user/ghost@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("ghost@example.com")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// The profile endpoint keys the lookup off the credential claim, so a
// caller can only ever see their own profile.
func TestUserHandler_GetMyProfile(t *testing.T) {
	fake := &fakeUserUsecase{user: &entity.RegisteredUser{Name: "Ana", Email: "ana@example.com"}}
	h := NewUserHandler(fake, discardLogger())

	rec := serveGated(t, http.MethodGet, "/register-user", "/register-user",
		nil, "ana@example.com", h.GetMyProfile)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
	assert.Equal(t, 1, fake.calls)
}

func TestUserHandler_RegisterUser(t *testing.T) {
	fake := &fakeUserUsecase{out: &usecase.InsertOutput{InsertedID: "64f000000000000000000002"}}
	h := NewUserHandler(fake, discardLogger())

	e := echo.New()
	e.Validator = validator.New()
	body := `{"name":"Ana","email":"ana@example.com","photo":"https://example.com/a.png"}`
	req := httptest.NewRequest(http.MethodPost, "/registerUsers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.RegisterUser(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertedId":"64f000000000000000000002"`)
}

func TestUserHandler_RegisterUser_MissingEmail(t *testing.T) {
	fake := &fakeUserUsecase{}
	h := NewUserHandler(fake, discardLogger())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/registerUsers", strings.NewReader(`{"name":"Ana"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.RegisterUser(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fake.calls)
}
