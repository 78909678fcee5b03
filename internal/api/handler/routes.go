package handler

import (
	"net/http"

	"github.com/qixdigital/ad-intelligence-api/internal/api/handler/router"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/aggregating"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/connecting"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/syncing"
	"github.com/qixdigital/ad-intelligence-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func MetaConnect(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/auth-url",
			Method:      http.MethodGet,
			Handler:     GetAuthURL(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/meta/callback",
			Method:      http.MethodPost,
			Handler:     MetaCallback(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/meta/adaccounts",
			Method:      http.MethodGet,
			Handler:     ListRemoteAdAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func AdAccounts(connector connecting.Connector, syncer syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/link",
			Method:      http.MethodPost,
			Handler:     LinkAdAccount(connector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/accounts",
			Method:      http.MethodGet,
			Handler:     ListClientAccounts(connector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncAdAccount(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListAccountCampaigns(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Stats(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stats",
			Method:      http.MethodGet,
			Handler:     GetStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
