package v1_test

import (
	"net/http"
	"testing"

	"github.com/ecoechos/backend/pkg/achievement"
	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthsOptions() {
	user := suite.register(suite.T(), "greenhouse")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Summary", user.Links.Self + "/months/2025-03", http.StatusNoContent},
		{"Achievements", user.Links.Self + "/months/2025-03/achievements", http.StatusNoContent},
		{"Invalid month", user.Links.Self + "/months/2025-13", http.StatusBadRequest},
		{"Date instead of month", user.Links.Self + "/months/2025-03-14", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsGet() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	first := suite.saveDay(suite.T(), user, headers, "2025-03-01", map[string]any{"electricityKwh": 150})
	second := suite.saveDay(suite.T(), user, headers, "2025-03-31", map[string]any{"beefKg": 10, "busKm": 40})
	suite.saveDay(suite.T(), user, headers, "2025-04-01", map[string]any{"beefKg": 100})

	r := test.Request(suite.T(), suite.controller, http.MethodGet, user.Links.Self+"/months/2025-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var m v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &m)

	total := first.Data.Total.Add(second.Data.Total)
	suite.Assert().Equal("2025-03", m.Data.Month.String())
	suite.Assert().Equal(2, m.Data.DaysLogged)
	suite.Assert().True(total.Equal(m.Data.Total), "expected %s, got %s", total, m.Data.Total)
	suite.Assert().True(total.Equal(m.Data.Emissions.Total))
	suite.Assert().True(first.Data.Emissions.Food.Add(second.Data.Emissions.Food).Equal(m.Data.Emissions.Food))

	suite.Require().Len(m.Data.Days, 2)
	suite.Assert().Equal("2025-03-01", m.Data.Days[0].Date.String())
	suite.Assert().True(first.Data.Total.Equal(m.Data.Days[0].Total))
	suite.Assert().Equal("2025-03-31", m.Data.Days[1].Date.String())

	suite.Assert().Equal(footprint.Feedback(total), m.Data.Feedback.Tier)
	suite.Assert().True(footprint.Equivalents(total).CarKm.Equal(m.Data.Equivalents.CarKm))
}

func (suite *TestSuiteStandard) TestMonthsGetEmpty() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, user.Links.Self+"/months/2025-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var m v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &m)
	suite.Assert().Equal(0, m.Data.DaysLogged)
	suite.Assert().True(m.Data.Total.IsZero())
	suite.Assert().Empty(m.Data.Days)
	suite.Assert().Equal(footprint.TierLight, m.Data.Feedback.Tier)
	suite.Assert().True(decimal.Zero.Equal(m.Data.Equivalents.Trees))
}

func (suite *TestSuiteStandard) TestMonthsGetLocalized() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	headers["Accept-Language"] = "pt-BR"

	r := test.Request(suite.T(), suite.controller, http.MethodGet, user.Links.Self+"/months/2025-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var m v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &m)
	suite.Assert().Equal("pt-BR", m.Data.Feedback.Language)
}

func (suite *TestSuiteStandard) TestMonthsGetOtherUser() {
	_, headers := suite.registerAndLogin(suite.T(), "greenhouse")
	other := suite.register(suite.T(), "bluehouse")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, other.Links.Self+"/months/2025-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, other.Links.Self+"/months/2025-03/achievements", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestAchievements() {
	user, headers := suite.registerAndLogin(suite.T(), "greenhouse")

	for _, date := range []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05"} {
		suite.saveDay(suite.T(), user, headers, date, map[string]any{"busKm": 20})
	}
	suite.saveDay(suite.T(), user, headers, "2025-04-01", map[string]any{"treesPlantedPerMonth": 1})

	r := test.Request(suite.T(), suite.controller, http.MethodGet, user.Links.Self+"/months/2025-03/achievements", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var a v1.AchievementResponse
	test.DecodeResponse(suite.T(), &r, &a)
	suite.Assert().Equal("2025-03", a.Data.Month.String())
	suite.Assert().Equal(5, a.Data.DaysLogged)

	achieved := map[achievement.Key]bool{}
	for _, ach := range a.Data.Achievements {
		achieved[ach.Key] = ach.Achieved
	}

	suite.Assert().True(achieved[achievement.Started])
	suite.Assert().True(achieved[achievement.BronzeStreak])
	suite.Assert().False(achieved[achievement.SilverStreak])
	suite.Assert().True(achieved[achievement.PublicTransport])
	suite.Assert().False(achieved[achievement.Planter], "records of other months do not count")
}
