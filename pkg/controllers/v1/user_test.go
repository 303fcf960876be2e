package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestUsersOptions() {
	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/users", http.StatusNoContent, "OPTIONS, POST"},
		{"Me", "http://example.com/v1/users/me", http.StatusNoContent, "OPTIONS, GET"},
		{"Detail", fmt.Sprintf("http://example.com/v1/users/%s", uuid.New()), http.StatusNoContent, "OPTIONS, GET, PATCH"},
		{"Invalid ID", "http://example.com/v1/users/not-a-uuid", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestUsersCreate() {
	user := suite.register(suite.T(), "  greenhouse ")

	suite.Assert().NotEqual(uuid.Nil, user.ID)
	suite.Assert().Equal("greenhouse", user.Username)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/users/%s", user.ID), user.Links.Self)
	suite.Assert().Equal(user.Links.Self+"/days/YYYY-MM-DD", user.Links.Days)
	suite.Assert().Equal(user.Links.Self+"/months/YYYY-MM", user.Links.Months)
}

func (suite *TestSuiteStandard) TestUsersCreatePasswordNotExposed() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/users", v1.UserCreate{
		Username: "greenhouse",
		Password: password,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.Assert().NotContains(r.Body.String(), password)
	suite.Assert().NotContains(r.Body.String(), "$2a$")
}

func (suite *TestSuiteStandard) TestUsersCreateFails() {
	suite.register(suite.T(), "taken")

	tests := []struct {
		name   string
		body   any
		status int
		err    error
	}{
		{"Username taken", v1.UserCreate{Username: "taken", Password: password}, http.StatusBadRequest, models.ErrUsernameNotUnique},
		{"Username too short", v1.UserCreate{Username: "ab", Password: password}, http.StatusBadRequest, models.ErrUsernameLength},
		{"Username with whitespace", v1.UserCreate{Username: "green house", Password: password}, http.StatusBadRequest, models.ErrUsernameWhitespace},
		{"Password too short", v1.UserCreate{Username: "greenhouse", Password: "short"}, http.StatusBadRequest, models.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/users", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().Contains(test.DecodeError(t, r.Body.Bytes()), tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestUsersCreateBrokenBody() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/users", `{ "username": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUsersMe() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/users/me", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var me v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &me)
	suite.Assert().Equal(user.ID, me.Data.ID)
	suite.Assert().Equal("greenhouse", me.Data.Username)
}

func (suite *TestSuiteStandard) TestUsersMeUnauthenticated() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/users/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/users/me", nil, map[string]string{"Authorization": "Bearer garbage"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestUsersGet() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	other := suite.register(suite.T(), "bluehouse")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Self", user.Links.Self, http.StatusOK},
		{"Other user", other.Links.Self, http.StatusForbidden},
		{"Unknown user", fmt.Sprintf("http://example.com/v1/users/%s", uuid.New()), http.StatusForbidden},
		{"Invalid ID", "http://example.com/v1/users/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, tt.url, nil, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUsersUpdate() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	r := test.Request(suite.T(), suite.controller, http.MethodPatch, user.Links.Self, map[string]any{
		"username": "bluehouse",
		"password": "an0ther-s3cret",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(user.ID, updated.Data.ID)
	suite.Assert().Equal("bluehouse", updated.Data.Username)

	// The old password does not work anymore
	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Username: "bluehouse", Password: password})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Username: "bluehouse", Password: "an0ther-s3cret"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Tokens stay valid since they reference the ID
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/users/me", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestUsersUpdateFails() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	other := suite.register(suite.T(), "taken")

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Nothing to update", user.Links.Self, map[string]any{}, http.StatusBadRequest},
		{"Username taken", user.Links.Self, map[string]any{"username": "taken"}, http.StatusBadRequest},
		{"Password too short", user.Links.Self, map[string]any{"password": "short"}, http.StatusBadRequest},
		{"Broken body", user.Links.Self, `{ "username": 2 }`, http.StatusBadRequest},
		{"Other user", other.Links.Self, map[string]any{"username": "stolen"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPatch, tt.url, tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), suite.controller, http.MethodPatch, user.Links.Self, map[string]any{"username": "bluehouse"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
