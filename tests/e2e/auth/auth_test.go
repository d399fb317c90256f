//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"resort-booking/internal/domain/user"
	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/tests/common/authtest"
	"resort-booking/tests/common/dbtest"
	"resort-booking/tests/common/httptest"
	"resort-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
	staffURL  = "/api/auth/staff"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "manager@example.com", string(user.RoleManager))
	dbtest.CreateTestUser(s.T(), s.DB, "frontdesk@example.com", string(user.RoleFrontdesk))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleFrontdesk))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "admin@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "admin@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "admin@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "access token cookie missing")
				require.Equal(t, loginRes.AccessToken, accessCookie.Value)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "frontdesk@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me resdto.UserResponse
		httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "frontdesk@example.com", me.Email)
		require.Equal(t, string(user.RoleFrontdesk), me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("rejects requests without a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects garbage tokens", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookie", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "frontdesk@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.Empty(t, accessCookie.Value)
	})
}

func (s *authSuite) TestCreateStaff() {
	newStaff := reqdto.CreateStaffRequest{
		Email:    "newstaff@example.com",
		Password: "password123",
		Name:     "New Staff",
		Role:     string(user.RoleFrontdesk),
	}

	s.Run("admin can create staff", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// The new account can log in right away.
		authtest.LoginUser(t, s.Router, newStaff.Email, newStaff.Password)
	})

	s.Run("duplicate email is a conflict", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		dup := newStaff
		dup.Email = "frontdesk@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, dup, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("manager is refused", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "manager@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("anonymous is refused", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestDeactivateStaff() {
	s.Run("deactivated staff can no longer log in", func() {
		t := s.T()
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		var frontdeskID string
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'frontdesk@example.com'").Scan(&frontdeskID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, staffURL+"/"+frontdeskID, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "frontdesk@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusForbidden, login.Code)
	})
}
