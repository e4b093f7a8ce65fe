// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/musicplayer/backend/config"
	"github.com/musicplayer/backend/internal/infra/dependency"
	"github.com/musicplayer/backend/internal/integration/adapters"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
	"github.com/musicplayer/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	timeMock    *mock.Time
	accessToken string
	tracks      map[string]uuid.UUID
	playlistID  string
}

type response struct {
	status int
	body   any
}

var (
	serverInit sync.Once
	testServer *httptest.Server
	clock      = mock.NewTime()
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: clock,
		db:       mock.NewDb(model.AllModels()...),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Catalog setup steps
	ctx.Given(`^the catalog contains the tracks:$`, test.theCatalogContainsTheTracks)

	// User setup steps
	ctx.Given(`^a user exists with name "([^"]*)", email "([^"]*)" and password "([^"]*)"$`, test.aUserExists)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the clock advances by "([^"]*)"$`, test.theClockAdvancesBy)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should match json:$`, test.theResponseShouldMatchJSON)

	// Database and cache assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the cache should contain the key "([^"]*)"$`, test.theCacheShouldContainTheKey)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.tracks = make(map[string]uuid.UUID)
	t.playlistID = ""
	t.timeMock.SetCurrentTime(time.Now())

	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() error {
	var err error
	serverInit.Do(func() {
		cfg := &config.Config{
			Server: config.ServerConfig{
				Environment:        "test",
				CORSAllowedOrigins: []string{"http://localhost:5173"},
			},
			Redis: config.RedisConfig{TrackCacheTTL: 10 * time.Minute},
			JWT: config.JWTConfig{
				Keys:   []config.SigningKey{{ID: "integration", Secret: testJWTSecret}},
				Expiry: 7 * 24 * time.Hour,
				Issuer: "musicplayer",
			},
			Password: config.PasswordConfig{HashCost: 4},
		}

		var injector *dependency.Injector
		injector, err = dependency.NewInjector(cfg, t.db.DbConn, mock.NewRedis(),
			dependency.WithTokenOptions(adapters.WithClock(clock.Now)),
		)
		if err != nil {
			return
		}
		testServer = httptest.NewServer(injector.Handler())
	})
	if err != nil {
		return err
	}
	if testServer == nil {
		return errors.New("test server failed to start")
	}

	t.uri = testServer.URL
	return nil
}
