package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sipradi/pvbu"
	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/x/account"
	"github.com/sipradi/pvbu/x/auth"
	"github.com/sipradi/pvbu/x/policy"
	"github.com/sipradi/pvbu/x/resource"
	"github.com/sipradi/pvbu/x/rule"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	otelresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("pvbu access api %s starting...", version))

	config := Config{}
	configPath := os.Getenv("PVBU_CONFIG")
	if configPath == "" {
		configPath = "/etc/pvbu/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	conf := core.SetupConfig(config.AccessControl)
	if conf.JWTSecret == "" {
		panic("accessControl.jwtSecret is required")
	}

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "pvbu-api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "pvbu",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.Resource{},
		&core.ResourceAction{},
		&core.ActionCondition{},
		&core.AccessPolicy{},
		&core.AccessRule{},
		&core.Owner{},
		&core.Driver{},
		&core.Passenger{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate: %v", err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	policyService := pvbu.SetupPolicyService(db, rdb, conf)
	policyHandler := policy.NewHandler(policyService)

	ruleService := pvbu.SetupRuleService(db, rdb, conf)
	ruleHandler := rule.NewHandler(ruleService)

	resourceService := pvbu.SetupResourceService(db, conf)
	resourceHandler := resource.NewHandler(resourceService)

	accountService := pvbu.SetupAccountService(db, rdb, mc, conf)
	accountHandler := account.NewHandler(accountService)

	authService := pvbu.SetupAuthService(db, rdb, mc, conf)
	authHandler := auth.NewHandler(authService)

	if conf.SeedOnBoot {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err = resourceService.Generate(ctx, nil)
		cancel()
		if err != nil {
			slog.Error("failed to seed resource catalog", slog.String("error", err.Error()))
		}
	}

	guard := authService.Guard

	apiV1 := e.Group("", authService.IdentifyIdentity)

	// auth
	apiV1.POST("/auth/login", authHandler.Login)
	apiV1.POST("/auth/logout", authHandler.Logout)

	// access policy
	apiV1.POST("/access-policy", policyHandler.Create, guard(core.ResourceAccessManagement, core.ActionCreate))
	apiV1.PATCH("/access-policy/:id", policyHandler.Update, guard(core.ResourceAccessManagement, core.ActionUpdate))
	apiV1.GET("/access-policy", policyHandler.List, guard(core.ResourceAccessManagement, core.ActionRead))
	apiV1.GET("/access-policy/me", policyHandler.Mine)
	apiV1.GET("/access-policy/:id", policyHandler.Get, guard(core.ResourceAccessManagement, core.ActionRead))
	apiV1.GET("/access-policy/rules/:policy_id", policyHandler.GetRules, guard(core.ResourceAccessManagement, core.ActionRead))

	// access rules
	apiV1.POST("/access-rules", ruleHandler.Create, guard(core.ResourceAccessManagement, core.ActionCreate))
	apiV1.PATCH("/access-rules/:policy_id", ruleHandler.Sync, guard(core.ResourceAccessManagement, core.ActionUpdate))
	apiV1.GET("/access-rules/resources", resourceHandler.ListResources, guard(core.ResourceAccessManagement, core.ActionRead))
	apiV1.GET("/access-rules/resources/actions", resourceHandler.ListResourceActions, guard(core.ResourceAccessManagement, core.ActionRead))
	apiV1.GET("/access-rules/resources/:resource_id/actions", resourceHandler.ListActionsByResource, guard(core.ResourceAccessManagement, core.ActionRead))
	apiV1.GET("/access-rules/resources-actions/:action_id/conditions", resourceHandler.ListConditionsByAction, guard(core.ResourceAccessManagement, core.ActionRead))

	// resource
	apiV1.POST("/resource/create-resource", resourceHandler.CreateResource, guard(core.ResourceAccessManagement, core.ActionCreate))
	apiV1.POST("/resource/generate-resource", resourceHandler.Generate, guard(core.ResourceAccessManagement, core.ActionCreate))
	apiV1.PATCH("/resource/:id/add-action", resourceHandler.AddActions, guard(core.ResourceAccessManagement, core.ActionUpdate))
	apiV1.PATCH("/resource/:id/add-condition", resourceHandler.AddCondition, guard(core.ResourceAccessManagement, core.ActionUpdate))

	// accounts
	apiV1.GET("/owners", accountHandler.ListOwners, guard(core.ResourceOwner, core.ActionRead))
	apiV1.GET("/drivers", accountHandler.ListDrivers, guard(core.ResourceDriver, core.ActionRead))
	apiV1.GET("/passengers", accountHandler.ListPassengers, guard(core.ResourcePassenger, core.ActionRead))
	apiV1.PATCH("/accounts/:role/:id/policy", accountHandler.AssignPolicy, guard(core.ResourceAccessManagement, core.ActionAssign))

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	prometheus.MustRegister(policy.DecisionMetrics)
	prometheus.MustRegister(rule.SyncMetrics)

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pvbu_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			count, err := policyService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count policies: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("policy").Set(float64(count))

			count, err = ruleService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count rules: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("rule").Set(float64(count))

			count, err = resourceService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count resource actions: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("resourceAction").Set(float64(count))

			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(config.Server.Listen))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := otelresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
