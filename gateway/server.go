package gateway

import (
	"context"
	"time"

	"github.com/0glabs/lunch-buddies/common"
	"github.com/0glabs/lunch-buddies/common/api"
	"github.com/0glabs/lunch-buddies/common/util"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Endpoint       string              // http endpoint
	OriginsAllowed []string            // CORS origins, all if empty
	Session        session.StoreConfig // session store settings
	StatsInterval  time.Duration       // interval to log session stats, disabled if 0
}

// MustServe serves the web page and API until `ctx` is done.
func MustServe(ctx context.Context, config Config) {
	store := session.NewStore(config.Session, common.LogOption{Logger: logrus.StandardLogger()})

	if config.StatsInterval > 0 {
		go reportStats(ctx, store, config.StatsInterval)
	}

	api.MustServe(ctx, config.Endpoint, Routes(store), api.RouterOption{
		OriginsAllowed: config.OriginsAllowed,
	})
}

// reportStats logs the number of live sessions at startup and then every `interval`.
func reportStats(ctx context.Context, store *session.Store, interval time.Duration) {
	util.ScheduleNow(ctx, func() error {
		logrus.WithField("sessions", store.Len()).Info("Session stats")
		return nil
	}, interval, "Failed to report session stats")
}

// Routes registers the page, form and JSON endpoints backed by `store`.
func Routes(store *session.Store) api.RouteFactory {
	ctrl := NewRestController(store)

	return func(router *gin.Engine) {
		router.SetHTMLTemplate(mustParseTemplates())
		router.StaticFS("/static", staticFileSystem())

		// stateless
		router.POST("/api/partition", api.Wrap(partition))

		page := router.Group("/", ctrl.withSession)
		page.GET("/", ctrl.renderPage)
		page.POST("/people", formAction(ctrl.addPerson))
		page.POST("/people/:index/delete", formAction(ctrl.removePerson))
		page.POST("/group-size", formAction(ctrl.setGroupSize))
		page.POST("/groups", formAction(ctrl.createGroups))
		page.POST("/reset", formAction(ctrl.reset))

		sessionApi := router.Group("/api", ctrl.withSession)
		sessionApi.GET("/session", api.Wrap(ctrl.getSession))
		sessionApi.POST("/people", api.Wrap(ctrl.addPerson))
		sessionApi.DELETE("/people/:index", api.Wrap(ctrl.removePerson))
		sessionApi.PUT("/group-size", api.Wrap(ctrl.setGroupSize))
		sessionApi.POST("/groups", api.Wrap(ctrl.createGroups))
		sessionApi.POST("/reset", api.Wrap(ctrl.reset))
	}
}
