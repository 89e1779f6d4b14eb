package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_SetsCookieAndHashesPassword(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	stored, err := api.repos.Users().FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext6", stored.Password)
}

func TestSignup_ValidationAggregatesFields(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/signup", map[string]string{}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t,
		"Please enter a username. Please enter an email. Please enter a password. ",
		body["message"])
}

func TestSignup_Duplicate(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPost, "/signup", map[string]string{
		"username": "lifter", "email": "other@gym.com", "password": "plaintext6",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Username or email already exists", decodeBody(t, rec)["message"])
}

func TestLogin_SuccessAndFailures(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, _ := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPost, "/login", map[string]string{
		"email": "lifter@gym.com", "password": "plaintext6",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeBody(t, rec)["user"])
	sessionCookie(t, rec)

	rec = api.do(t, http.MethodPost, "/login", map[string]string{
		"email": "nobody@gym.com", "password": "plaintext6",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email doesn't exist", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodPost, "/login", map[string]string{
		"email": "lifter@gym.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password is incorrect", decodeBody(t, rec)["message"])
}

func TestVerifyJWT(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodGet, "/verifyjwt", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeBody(t, rec)["id"])

	rec = api.do(t, http.MethodGet, "/verifyjwt", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "not authenticated", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/verifyjwt", nil, &http.Cookie{Name: "jwt", Value: "garbage"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "jwt is invalid", decodeBody(t, rec)["message"])
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/exercises_list", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "not authenticated", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/exercises_list", nil, &http.Cookie{Name: "jwt", Value: "bad"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "jwt is invalid", decodeBody(t, rec)["message"])
}

func TestGetUserDataAndEditProfile(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, _ := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodGet, "/get_user_data?id="+id, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "lifter", body["username"])
	// the password hash must never leave the server
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)

	rec = api.do(t, http.MethodGet, "/get_user_data?id=unknown", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user not found", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodPut, "/edit_profile?id="+id, map[string]any{
		"name": "Alex", "weight": 82.5,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/get_user_data?id="+id, nil, nil)
	body = decodeBody(t, rec)
	assert.Equal(t, "Alex", body["name"])
	assert.Equal(t, 82.5, body["weight"])
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPut, "/change_password", map[string]string{
		"currentPassword": "wrong", "newPassword": "newlongpass",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password is incorrect", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodPut, "/change_password", map[string]string{
		"currentPassword": "plaintext6", "newPassword": "newlongpass",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password changed successfully", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodPost, "/login", map[string]string{
		"email": "lifter@gym.com", "password": "newlongpass",
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearCookies(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodGet, "/clear_cookies", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, -1, cleared[0].MaxAge)

	rec = api.do(t, http.MethodGet, "/clear_cookies", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
