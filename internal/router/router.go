// Package router sets up the gin engine, its middlewares and all routes.
package router

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/finsight/backend/internal/controllers"
	"github.com/finsight/backend/internal/httputil"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router sets up the engine and registers all routes. The analytical
// routes are gated behind HTTP basic auth; the credentials come from
// AUTH_USERNAME and AUTH_PASSWORD. In debug mode missing credentials
// fall back to a dummy account, in release mode they are an error.
func Router(s *controllers.Server) (*gin.Engine, error) {
	r := gin.New()

	// We do not process client IPs, so there is no point in parsing
	// the X-Forwarded-For header.
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if gin.IsDebugging() {
		pprof.Register(r)
	}

	accounts, err := authAccounts()
	if err != nil {
		return nil, err
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/healthz", s.GetHealthz)
	r.OPTIONS("/healthz", controllers.OptionsHealthz)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 setup. Everything that reads the ledger requires
	// authentication.
	v1 := r.Group("/v1", gin.BasicAuth(accounts))
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	s.RegisterRoutes(v1)

	log.Info().Msg("backend startup complete")

	return r, nil
}

// authAccounts reads the basic auth credentials from the environment.
func authAccounts() (gin.Accounts, error) {
	username, usernameSet := os.LookupEnv("AUTH_USERNAME")
	password, passwordSet := os.LookupEnv("AUTH_PASSWORD")

	if usernameSet && passwordSet {
		return gin.Accounts{username: password}, nil
	}

	if gin.IsDebugging() {
		log.Warn().Msg("AUTH_USERNAME and AUTH_PASSWORD are not set, using debug credentials")
		return gin.Accounts{"admin": "123"}, nil
	}

	return nil, errors.New("AUTH_USERNAME and AUTH_PASSWORD must be set in release mode")
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"`
	Version string `json:"version" example:"https://example.com/version"`
	Metrics string `json:"metrics" example:"https://example.com/metrics"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// GetRoot is the entrypoint for the API, listing all endpoints.
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the software version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Expenses string `json:"expenses" example:"https://example.com/v1/expenses"`
	Budget   string `json:"budget" example:"https://example.com/v1/budget"`
	Insights string `json:"insights" example:"https://example.com/v1/insights"`
	Advice   string `json:"advice" example:"https://example.com/v1/advice"`
}

// GetV1 returns general information about the v1 API.
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses: httputil.RequestPathV1(c) + "/expenses",
			Budget:   httputil.RequestPathV1(c) + "/budget",
			Insights: httputil.RequestPathV1(c) + "/insights",
			Advice:   httputil.RequestPathV1(c) + "/advice",
		},
	})
}

func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
