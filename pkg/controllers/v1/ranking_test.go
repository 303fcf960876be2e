package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/ecoechos/backend/test"
)

// rankingFixture creates four users. alice has the highest total, carol
// the lowest and dave has no record in March.
func (suite *TestSuiteStandard) rankingFixture(t *testing.T) map[string]map[string]string {
	headers := map[string]map[string]string{}

	days := map[string]map[string]any{
		"alice": {"beefKg": 20},
		"bob":   {"beefKg": 10},
		"carol": {"busKm": 10},
	}

	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		user, h := suite.registerAndLogin(t, name)
		headers[name] = h

		if input, ok := days[name]; ok {
			suite.saveDay(t, user, h, "2025-03-14", input)
		}
	}

	return headers
}

func (suite *TestSuiteStandard) getRanking(t *testing.T, url string) v1.Ranking {
	r := test.Request(t, suite.controller, http.MethodGet, url, nil)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var ranking v1.RankingResponse
	test.DecodeResponse(t, &r, &ranking)
	return ranking.Data
}

func usernames(r v1.Ranking) []string {
	names := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		names = append(names, e.Username)
	}
	return names
}

func (suite *TestSuiteStandard) TestRankingOptions() {
	r := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/v1/rankings/2025-03", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/v1/rankings/March", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRanking() {
	suite.rankingFixture(suite.T())

	tests := []struct {
		name      string
		url       string
		order     store.Order
		usernames []string
		positions []int
	}{
		{"Default", "http://example.com/v1/rankings/2025-03", store.OrderDescending, []string{"alice", "bob", "carol"}, []int{1, 2, 3}},
		{"Ascending", "http://example.com/v1/rankings/2025-03?order=asc", store.OrderAscending, []string{"carol", "bob", "alice"}, []int{1, 2, 3}},
		{"Limit", "http://example.com/v1/rankings/2025-03?limit=2", store.OrderDescending, []string{"alice", "bob"}, []int{1, 2}},
		{"Match", "http://example.com/v1/rankings/2025-03?match=*o*", store.OrderDescending, []string{"bob", "carol"}, []int{2, 3}},
		{"Match is case insensitive", "http://example.com/v1/rankings/2025-03?match=BO*", store.OrderDescending, []string{"bob"}, []int{2}},
		{"Empty month", "http://example.com/v1/rankings/2024-01", store.OrderDescending, []string{}, []int{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			ranking := suite.getRanking(t, tt.url)
			suite.Assert().Equal(tt.order, ranking.Order)
			suite.Assert().Equal(tt.usernames, usernames(ranking))

			positions := make([]int, 0, len(ranking.Entries))
			for _, e := range ranking.Entries {
				positions = append(positions, e.Position)
				suite.Assert().Equal(1, e.Days)
			}
			suite.Assert().Equal(tt.positions, positions)
		})
	}
}

func (suite *TestSuiteStandard) TestRankingFails() {
	tests := []struct {
		name string
		url  string
	}{
		{"Invalid month", "http://example.com/v1/rankings/2025-13"},
		{"Limit too high", "http://example.com/v1/rankings/2025-03?limit=101"},
		{"Negative limit", "http://example.com/v1/rankings/2025-03?limit=-1"},
		{"Limit not a number", "http://example.com/v1/rankings/2025-03?limit=ten"},
		{"Unknown order", "http://example.com/v1/rankings/2025-03?order=sideways"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRankingFollowsChanges() {
	headers := suite.rankingFixture(suite.T())
	suite.Assert().Equal([]string{"alice", "bob", "carol"}, usernames(suite.getRanking(suite.T(), "http://example.com/v1/rankings/2025-03")))

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/users/me", nil, headers["carol"])
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var carol v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &carol)

	// A saved day must not be hidden by the cached ranking
	suite.saveDay(suite.T(), carol.Data, headers["carol"], "2025-03-15", map[string]any{"beefKg": 50})
	suite.Assert().Equal([]string{"carol", "alice", "bob"}, usernames(suite.getRanking(suite.T(), "http://example.com/v1/rankings/2025-03")))

	// Renaming changes the cached usernames
	r = test.Request(suite.T(), suite.controller, http.MethodPatch, carol.Data.Links.Self, map[string]any{"username": "zoe"}, headers["carol"])
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal([]string{"zoe", "alice", "bob"}, usernames(suite.getRanking(suite.T(), "http://example.com/v1/rankings/2025-03")))

	// Deleting removes the user from the month
	for _, date := range []string{"2025-03-14", "2025-03-15"} {
		r = test.Request(suite.T(), suite.controller, http.MethodDelete, carol.Data.Links.Self+"/days/"+date, nil, headers["carol"])
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	}
	suite.Assert().Equal([]string{"alice", "bob"}, usernames(suite.getRanking(suite.T(), "http://example.com/v1/rankings/2025-03")))
}
