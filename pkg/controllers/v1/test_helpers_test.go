package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/test"
)

const password = "s3cret-garden"

// register creates a user with the default password.
func (suite *TestSuiteStandard) register(t *testing.T, username string) v1.User {
	r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/users", v1.UserCreate{
		Username: username,
		Password: password,
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var u v1.UserResponse
	test.DecodeResponse(t, &r, &u)
	return u.Data
}

// login returns the authorization header for a user.
func (suite *TestSuiteStandard) login(t *testing.T, username string) map[string]string {
	r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
		Username: username,
		Password: password,
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var l v1.LoginResponse
	test.DecodeResponse(t, &r, &l)
	return map[string]string{"Authorization": "Bearer " + l.Data.Token.Token}
}

// registerAndLogin creates a user and returns it together with its authorization header.
func (suite *TestSuiteStandard) registerAndLogin(t *testing.T, username string) (v1.User, map[string]string) {
	user := suite.register(t, username)
	return user, suite.login(t, username)
}

// saveDay saves the activity data for a day and returns the record.
func (suite *TestSuiteStandard) saveDay(t *testing.T, user v1.User, headers map[string]string, date string, input map[string]any) v1.DayResponse {
	r := test.Request(t, suite.controller, http.MethodPut, fmt.Sprintf("%s/days/%s", user.Links.Self, date), input, headers)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var d v1.DayResponse
	test.DecodeResponse(t, &r, &d)
	return d
}
