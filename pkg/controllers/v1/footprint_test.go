package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/ecoechos/backend/pkg/controllers/v1"
	"github.com/ecoechos/backend/pkg/emission"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/test"
)

func (suite *TestSuiteStandard) TestFootprintOptions() {
	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/footprints", "OPTIONS, POST"},
		{"http://example.com/v1/factors", "OPTIONS, GET"},
		{"http://example.com/v1/tips", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestFootprintCalculate() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/footprints", map[string]any{
		"electricityKwh": 150,
		"beefKg":         10,
		"busKm":          40,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var f v1.FootprintResponse
	test.DecodeResponse(suite.T(), &r, &f)

	in := footprint.NewInput()
	in.ElectricityKWh = 150
	in.BeefKg = 10
	in.BusKm = 40
	expected := footprint.Calculate(in)

	suite.Assert().True(expected.Total.Equal(f.Data.Result.Total), "expected %s, got %s", expected.Total, f.Data.Result.Total)
	suite.Assert().True(expected.Food.Equal(f.Data.Result.Food))
	suite.Assert().True(expected.Housing.Equal(f.Data.Result.Housing), "omitted fields must use their defaults")

	suite.Require().Len(f.Data.Categories, len(expected.Categories()))
	for i, c := range expected.Categories() {
		suite.Assert().Equal(c.Category, f.Data.Categories[i].Category)
		suite.Assert().True(c.Emissions.Equal(f.Data.Categories[i].Emissions), "%s: expected %s, got %s", c.Category, c.Emissions, f.Data.Categories[i].Emissions)
	}

	suite.Assert().Equal(footprint.Feedback(expected.Total), f.Data.Feedback.Tier)
	suite.Assert().Equal("en", f.Data.Feedback.Language)

	suite.Require().NotEmpty(f.Data.Advice)
	suite.Assert().Equal(emission.GroupFood, f.Data.Advice[0].Category)
	suite.Assert().Equal(footprint.Tips(emission.GroupFood)[:2], f.Data.Advice[0].Tips)

	suite.Assert().True(footprint.Equivalents(expected.Total).Trees.Equal(f.Data.Equivalents.Trees))
}

func (suite *TestSuiteStandard) TestFootprintLanguage() {
	tests := []struct {
		header   string
		language string
		prefix   string
	}{
		{"", "en", "Light footprint"},
		{"pt-BR,pt;q=0.9,en;q=0.8", "pt-BR", "Pegada leve"},
		{"pt", "pt-BR", "Pegada leve"},
		{"de-DE", "en", "Light footprint"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.header, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Accept-Language"] = tt.header
			}

			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/footprints", map[string]any{}, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var f v1.FootprintResponse
			test.DecodeResponse(t, &r, &f)
			suite.Assert().Equal(tt.language, f.Data.Feedback.Language)
			suite.Assert().True(strings.HasPrefix(f.Data.Feedback.Message, tt.prefix), f.Data.Feedback.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestFootprintPicker() {
	suite.controller.V1.Picker = func(n int) int { return n - 1 }

	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/footprints", map[string]any{"beefKg": 10})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var f v1.FootprintResponse
	test.DecodeResponse(suite.T(), &r, &f)

	tips := footprint.Tips(emission.GroupFood)
	suite.Require().NotEmpty(f.Data.Advice)
	suite.Assert().Equal(tips[len(tips)-1], f.Data.Advice[0].Tips[0])
}

func (suite *TestSuiteStandard) TestFootprintInvalid() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Negative quantity", map[string]any{"beefKg": -1}, "beefKg must not be negative"},
		{"Unknown fuel", map[string]any{"fuelType": "kerosene"}, "fuelType 'kerosene'"},
		{"Wrong type", `{ "busKm": "far" }`, "field 'busKm' must be of type float64"},
		{"Empty body", "", "request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/footprints", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			suite.Assert().Contains(test.DecodeError(t, r.Body.Bytes()), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestFactors() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/factors", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var all v1.FactorListResponse
	test.DecodeResponse(suite.T(), &r, &all)
	suite.Assert().Len(all.Data, len(emission.All()))

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/factors?group=food", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var food v1.FactorListResponse
	test.DecodeResponse(suite.T(), &r, &food)
	suite.Require().NotEmpty(food.Data)
	for _, f := range food.Data {
		suite.Assert().Equal(emission.GroupFood, f.Group)
	}

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/factors?group=space", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTips() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/tips", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var tips v1.TipListResponse
	test.DecodeResponse(suite.T(), &r, &tips)
	suite.Require().NotEmpty(tips.Data)

	for _, c := range tips.Data {
		suite.Assert().NotEmpty(c.Tips, "category %s", c.Category)
		suite.Assert().NotEqual(emission.GroupOffsets, c.Category)
	}
}
