package v1_test

import (
	"net/http"

	v1 "github.com/pema-app/backend/internal/controllers/v1"
	"github.com/pema-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetProfile() {
	user, token := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/profile", "", test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.Equal(suite.T(), user.Username, response.Data.Username)
	assert.Equal(suite.T(), "http://example.com/v1/income", response.Data.Links.Income)
}

func (suite *TestSuiteStandard) TestUpdateProfilePicture() {
	_, token := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/profile", map[string]any{
		"profilePicture": "https://example.com/media/jane.png",
	}, test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "https://example.com/media/jane.png", response.Data.ProfilePicture)
}

func (suite *TestSuiteStandard) TestUpdateProfileBalanceIgnored() {
	_, token := suite.registerTestUser()
	suite.setIncome(token, decimal.NewFromInt(100))

	// The balance is a derived value, attempts to set it are silently ignored
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/profile", map[string]any{
		"balance": 99999,
	}, test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(100)), "balance is %s, should be 100", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestProfileOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/profile", "", test.BearerToken(suite.token()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH", recorder.Header().Get("allow"))
}
