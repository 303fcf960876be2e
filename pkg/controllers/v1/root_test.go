package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Users:      "http://example.com/v1/users",
		Me:         "http://example.com/v1/users/me",
		Login:      "http://example.com/v1/auth/login",
		Footprints: "http://example.com/v1/footprints",
		Factors:    "http://example.com/v1/factors",
		Tips:       "http://example.com/v1/tips",
		Rankings:   "http://example.com/v1/rankings/YYYY-MM",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCleanup() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	suite.saveDay(suite.T(), user, headers, "2025-03-14", map[string]any{"busKm": 10})
	suite.Require().Len(suite.getRanking(suite.T(), "http://example.com/v1/rankings/2025-03").Entries, 1)

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Empty(suite.getRanking(suite.T(), "http://example.com/v1/rankings/2025-03").Entries, "cached rankings must be dropped")

	// The token of a deleted user is not accepted anymore
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/users/me", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name    string
		url     string
		enabled bool
		status  int
	}{
		{"No confirmation", "http://example.com/v1", true, http.StatusBadRequest},
		{"Wrong confirmation", "http://example.com/v1?confirm=yes", true, http.StatusBadRequest},
		{"Disabled", "http://example.com/v1?confirm=yes-please-delete-everything", false, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			co := suite.controller
			co.V1.EnableCleanup = tt.enabled

			r := test.Request(t, co, http.MethodDelete, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	suite.Require().NoError(suite.controller.V1.Store.Close())

	tests := []struct {
		name    string
		method  string
		url     string
		headers map[string]string
	}{
		{"Ranking", http.MethodGet, "http://example.com/v1/rankings/2025-03", nil},
		{"Authenticated", http.MethodGet, user.Links.Self + "/months/2025-03", headers},
		{"Login", http.MethodPost, "http://example.com/v1/auth/login", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var body any
			if tt.method == http.MethodPost {
				body = v1.Credentials{Username: "greenhouse", Password: password}
			}

			r := test.Request(t, suite.controller, tt.method, tt.url, body, tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}
