package v1_test

import (
	"net/http"

	v1 "github.com/pema-app/backend/internal/controllers/v1"
	"github.com/pema-app/backend/internal/models"
	"github.com/pema-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Email:     "jane@example.com",
		Username:  "jane",
		Password:  "correct-horse-battery",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "jane@example.com", response.Data.Email)
	assert.Equal(suite.T(), "jane", response.Data.Username)
	assert.Equal(suite.T(), "http://example.com/v1/profile", response.Data.Links.Profile)
	assert.Equal(suite.T(), "http://example.com/v1/income", response.Data.Links.Income)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	suite.registerFixedUser("jane@example.com", "jane")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Email:    "jane@example.com",
		Username: "janedoe",
		Password: "correct-horse-battery",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), response.Details, "email")
}

func (suite *TestSuiteStandard) TestRegisterShortPassword() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Email:    "jane@example.com",
		Username: "jane",
		Password: "short",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), response.Details, "password")
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", `{ "email": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.registerFixedUser("jane@example.com", "jane")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-horse-battery",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.Access)
	assert.NotEmpty(suite.T(), response.Data.Refresh)
}

func (suite *TestSuiteStandard) TestLoginCaseInsensitiveEmail() {
	suite.registerFixedUser("jane@example.com", "jane")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    "Jane@Example.com",
		Password: "correct-horse-battery",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	suite.registerFixedUser("jane@example.com", "jane")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	// The response must be the same as for a wrong password so that it does
	// not disclose whether the email is registered
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse-battery",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	var response v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the email or password is incorrect", *response.Error)
}

func (suite *TestSuiteStandard) TestRefreshToken() {
	suite.registerFixedUser("jane@example.com", "jane")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-horse-battery",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var login v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &login)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/auth/refresh", v1.RefreshRequest{
		Refresh: login.Data.Refresh,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var refreshed v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &refreshed)
	require.NotNil(suite.T(), refreshed.Data)
	assert.NotEmpty(suite.T(), refreshed.Data.Access)
}

func (suite *TestSuiteStandard) TestRefreshRejectsAccessToken() {
	_, token := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/refresh", v1.RefreshRequest{
		Refresh: token,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRequireLoginWithoutToken() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRequireLoginGarbageToken() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", test.BearerToken("not-a-token"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRequireLoginDeletedUser() {
	user, token := suite.registerTestUser()

	require.Nil(suite.T(), models.DB.Delete(&models.User{}, user.ID).Error)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

// registerFixedUser registers a user with known credentials.
func (suite *TestSuiteStandard) registerFixedUser(email, username string) {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "correct-horse-battery",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	for _, path := range []string{"/v1/auth/register", "/v1/auth/login", "/v1/auth/refresh"} {
		recorder := test.Request(suite.T(), http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))
	}
}
