package integrationtest

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/service"
	"github.com/fakhrymubarak/weather-widget/internal/storage"
)

type WidgetTestSuite struct {
	suite.Suite
	driver     string
	weatherAPI *httptest.Server
	httpServer *httptest.Server
	store      storage.Store
	miniRedis  *miniredis.Miniredis
}

func (suite *WidgetTestSuite) SetupSuite() {
	suite.weatherAPI = mockWeatherAPI(fixturePath())
	suite.T().Setenv("WEATHERAPI_API_KEY", testAPIKey)
	viper.Set("weatherapi.api_url", suite.weatherAPI.URL+"/v1/forecast.json")
	viper.Set("storage.driver", suite.driver)

	switch suite.driver {
	case "redis":
		suite.miniRedis = miniredis.RunT(suite.T())
		viper.Set("redis.addr", suite.miniRedis.Addr())
	case "sqlite":
		viper.Set("storage.sqlite_path", filepath.Join(suite.T().TempDir(), "widget.db"))
	}
	config.ReloadConfigForTest()

	srv, store, err := setupIntegrationTestServer()
	suite.Require().NoError(err)
	suite.httpServer = srv
	suite.store = store
}

func (suite *WidgetTestSuite) TearDownSuite() {
	if suite.httpServer != nil {
		suite.httpServer.Close()
	}
	if suite.store != nil {
		_ = suite.store.Close()
	}
	if suite.weatherAPI != nil {
		suite.weatherAPI.Close()
	}
}

// browser returns a client with its own cookie jar, i.e. a fresh browser session.
func (suite *WidgetTestSuite) browser() *http.Client {
	jar, err := cookiejar.New(nil)
	suite.Require().NoError(err)
	c := suite.httpServer.Client()
	return &http.Client{Transport: c.Transport, Jar: jar}
}

func (suite *WidgetTestSuite) page(c *http.Client, path string) *goquery.Document {
	resp, err := c.Get(suite.httpServer.URL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	suite.Require().NoError(err)
	return doc
}

func TestWidgetRedisSuite(t *testing.T) {
	suite.Run(t, &WidgetTestSuite{driver: "redis"})
}

func TestWidgetSQLiteSuite(t *testing.T) {
	suite.Run(t, &WidgetTestSuite{driver: "sqlite"})
}

func (suite *WidgetTestSuite) TestSearchFlow() {
	tests := []struct {
		name     string
		location string
		validate func(t *testing.T, doc *goquery.Document)
	}{
		{
			name:     "Success - City name",
			location: "Chicago",
			validate: func(t *testing.T, doc *goquery.Document) {
				assert.Equal(t, "Chicago", doc.Find("#cityName").Text())
				assert.Equal(t, "72°F", doc.Find("#temperature").Text())
				assert.Equal(t, 5, doc.Find("#todayHourly .hour").Length())
				assert.Equal(t, "Mon (2026-10-19)", doc.Find("#forecastList .forecast-day div").First().Text())
				assert.Empty(t, doc.Find("#alerts").Text())
			},
		},
		{
			name:     "Success - Zip code",
			location: "60614",
			validate: func(t *testing.T, doc *goquery.Document) {
				assert.Equal(t, 7, doc.Find("#forecastList .forecast-day").Length())
				assert.Empty(t, doc.Find("#alerts").Text())
			},
		},
		{
			name:     "Failed - Invalid input",
			location: "60614!",
			validate: func(t *testing.T, doc *goquery.Document) {
				assert.Equal(t, service.MsgInvalidLocation, doc.Find("#alerts p").Text())
				assert.Empty(t, doc.Find("#cityName").Text())
			},
		},
		{
			name:     "Failed - Unknown location",
			location: "Atlantis",
			validate: func(t *testing.T, doc *goquery.Document) {
				assert.Equal(t, service.MsgFetchFailed, doc.Find("#alerts p").Text())
				assert.Equal(t, 0, doc.Find("#forecastList .forecast-day").Length())
			},
		},
		{
			name:     "Failed - Malformed response",
			location: "Garbled",
			validate: func(t *testing.T, doc *goquery.Document) {
				assert.Equal(t, 1, doc.Find("#alerts p").Length())
				assert.Equal(t, service.MsgFetchFailed, doc.Find("#alerts p").Text())
				assert.Empty(t, doc.Find("#temperature").Text())
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			doc := suite.page(suite.browser(), "/search?location="+url.QueryEscape(tt.location))
			tt.validate(suite.T(), doc)
		})
	}
}

func (suite *WidgetTestSuite) TestReloadRestoresLastSearch() {
	b := suite.browser()

	suite.page(b, "/search?location=Chicago")
	suite.page(b, "/search?location=Denver")
	doc := suite.page(b, "/")

	val, _ := doc.Find("#searchCity").Attr("value")
	suite.Equal("Denver", val)
	suite.Equal("Chicago", doc.Find("#cityName").Text(), "fixture payload is always Chicago")
	suite.Equal(5, doc.Find("#todayHourly .hour").Length())
}

func (suite *WidgetTestSuite) TestFailedFetchIsStillRemembered() {
	b := suite.browser()

	suite.page(b, "/search?location=Atlantis")
	doc := suite.page(b, "/")

	val, _ := doc.Find("#searchCity").Attr("value")
	suite.Equal("Atlantis", val)
	// the automatic lookup fails again and alerts once
	suite.Equal(1, doc.Find("#alerts p").Length())
}

func (suite *WidgetTestSuite) TestSessionsDoNotShareLocation() {
	a, b := suite.browser(), suite.browser()

	suite.page(a, "/search?location=Denver")
	doc := suite.page(b, "/")

	val, _ := doc.Find("#searchCity").Attr("value")
	suite.Empty(val)
	suite.Empty(doc.Find("#cityName").Text())
}

func (suite *WidgetTestSuite) TestForecastAPI() {
	resp, err := suite.browser().Get(suite.httpServer.URL + "/api/forecast?location=Chicago")
	require.NoError(suite.T(), err)
	defer resp.Body.Close()
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(resp.Header.Get("Content-Type"), "application/json")
}
