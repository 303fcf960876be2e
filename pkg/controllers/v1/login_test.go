package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ecoechos/backend/pkg/auth"
	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/test"
)

func (suite *TestSuiteStandard) TestLoginOptions() {
	r := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/v1/auth/login", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestLogin() {
	user := suite.register(suite.T(), "greenhouse")

	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
		Username: " greenhouse ",
		Password: password,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var l v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &l)
	suite.Assert().Equal("Bearer", l.Data.Token.Type)
	suite.Assert().NotEmpty(l.Data.Token.Token)
	suite.Assert().WithinDuration(time.Now().Add(time.Hour), l.Data.Token.ExpiresAt, time.Minute)
	suite.Assert().Equal(user.ID, l.Data.User.ID)

	claims, err := auth.NewIssuer(test.Secret, time.Hour).Verify(l.Data.Token.Token)
	suite.Require().NoError(err)
	uid, err := claims.UserID()
	suite.Require().NoError(err)
	suite.Assert().Equal(user.ID, uid)
	suite.Assert().Equal("greenhouse", claims.Username)
}

func (suite *TestSuiteStandard) TestLoginFails() {
	suite.register(suite.T(), "greenhouse")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Wrong password", v1.Credentials{Username: "greenhouse", Password: "wrong-password"}, http.StatusUnauthorized},
		{"Unknown user", v1.Credentials{Username: "nobody", Password: password}, http.StatusUnauthorized},
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "password": 1 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestLoginSameErrorForUnknownUser() {
	suite.register(suite.T(), "greenhouse")

	wrong := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Username: "greenhouse", Password: "wrong-password"})
	unknown := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Username: "nobody", Password: "wrong-password"})

	suite.Assert().Equal(test.DecodeError(suite.T(), wrong.Body.Bytes()), test.DecodeError(suite.T(), unknown.Body.Bytes()))
	suite.Assert().Equal(auth.ErrInvalidCredentials.Error(), test.DecodeError(suite.T(), wrong.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLoginRateLimit() {
	suite.controller.V1.Limiter = auth.NewLimiter(2)
	suite.register(suite.T(), "greenhouse")

	credentials := v1.Credentials{Username: "greenhouse", Password: "wrong-password"}
	for range 2 {
		r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", credentials)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	}

	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/auth/login", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusTooManyRequests)
	suite.Assert().Equal("60", r.Header().Get("Retry-After"))
	suite.Assert().Equal(auth.ErrTooManyRequests.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
