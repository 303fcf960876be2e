package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/test"
)

func (suite *TestSuiteStandard) TestDaysOptions() {
	user := suite.register(suite.T(), "greenhouse")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Valid", user.Links.Self + "/days/2025-03-14", http.StatusNoContent},
		{"Invalid date", user.Links.Self + "/days/2025-02-30", http.StatusBadRequest},
		{"Month instead of date", user.Links.Self + "/days/2025-03", http.StatusBadRequest},
		{"Invalid ID", "http://example.com/v1/users/not-a-uuid/days/2025-03-14", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDaysSave() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	first := suite.saveDay(suite.T(), user, headers, "2025-03-14", map[string]any{"electricityKwh": 150, "beefKg": 2})
	suite.Assert().Equal(user.ID, first.Data.UserID)
	suite.Assert().Equal("2025-03-14", first.Data.Date.String())
	suite.Assert().Equal(150.0, first.Data.Input.ElectricityKWh)
	suite.Assert().True(first.Data.Total.Equal(first.Data.Emissions.Total))

	in := footprint.NewInput()
	in.ElectricityKWh = 150
	in.BeefKg = 2
	suite.Assert().True(footprint.Calculate(in).Total.Equal(first.Data.Total), "the total is calculated on the server")

	// Saving again replaces the record of the day
	second := suite.saveDay(suite.T(), user, headers, "2025-03-14", map[string]any{"busKm": 10})
	suite.Assert().Equal(first.Data.ID, second.Data.ID)
	suite.Assert().Equal(0.0, second.Data.Input.ElectricityKWh)
	suite.Assert().Equal(10.0, second.Data.Input.BusKm)

	r := test.Request(suite.T(), suite.controller, http.MethodGet, user.Links.Self+"/days/2025-03-14", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)
	suite.Assert().Equal(second.Data.ID, day.Data.ID)
	suite.Assert().True(second.Data.Total.Equal(day.Data.Total))
}

func (suite *TestSuiteStandard) TestDaysSaveFails() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	other := suite.register(suite.T(), "bluehouse")

	tests := []struct {
		name    string
		url     string
		body    any
		headers map[string]string
		status  int
	}{
		{"Unauthenticated", user.Links.Self + "/days/2025-03-14", map[string]any{}, map[string]string{}, http.StatusUnauthorized},
		{"Other user", other.Links.Self + "/days/2025-03-14", map[string]any{}, headers, http.StatusForbidden},
		{"Invalid date", user.Links.Self + "/days/14.03.2025", map[string]any{}, headers, http.StatusBadRequest},
		{"Negative quantity", user.Links.Self + "/days/2025-03-14", map[string]any{"busKm": -3}, headers, http.StatusBadRequest},
		{"Empty body", user.Links.Self + "/days/2025-03-14", "", headers, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPut, tt.url, tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDaysGetNotFound() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, user.Links.Self+"/days/2025-03-14", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDaysDelete() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	suite.saveDay(suite.T(), user, headers, "2025-03-14", map[string]any{"busKm": 10})

	url := fmt.Sprintf("%s/days/%s", user.Links.Self, "2025-03-14")

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, url, nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, url, nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, url, nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
