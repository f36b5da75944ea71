package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/challenges"
	"github.com/WaekyTV/fitquest-backend/internal/config"
	"github.com/WaekyTV/fitquest-backend/internal/db"
	"github.com/WaekyTV/fitquest-backend/internal/mealgen"
	"github.com/WaekyTV/fitquest-backend/internal/meals"
	"github.com/WaekyTV/fitquest-backend/internal/middleware"
	"github.com/WaekyTV/fitquest-backend/internal/misc"
	"github.com/WaekyTV/fitquest-backend/internal/profile"
	"github.com/WaekyTV/fitquest-backend/internal/progression"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/internal/trackers"
	"github.com/WaekyTV/fitquest-backend/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config  *config.Config
	dbPool  *pgxpool.Pool
	catalog *scoring.Catalog

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	profileRepo     *profile.Repo
	workoutsRepo    *workouts.Repo
	mealsRepo       *meals.Repo
	trackersRepo    *trackers.Repo
	progressionRepo *progression.Repo
	challengesRepo  *challenges.Repo

	mealGenClient *mealgen.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitquest", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	profileRepo := profile.NewRepo(dbPool)

	authService := auth.NewAuthService(profileRepo, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitquest-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Duration(params.Config.MealGenTimeoutSeconds) * time.Second,
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		catalog:     scoring.DefaultCatalog(),
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		profileRepo:     profileRepo,
		workoutsRepo:    workouts.NewRepo(dbPool),
		mealsRepo:       meals.NewRepo(dbPool),
		trackersRepo:    trackers.NewRepo(dbPool),
		progressionRepo: progression.NewRepo(dbPool),
		challengesRepo:  challenges.NewRepo(dbPool),

		mealGenClient: mealgen.NewClient(
			params.Config.MealGenBaseURL,
			params.Config.MealGenCacheTTLSecs,
			tracedHttpClient,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitquest-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	r.HandleFunc("/", miscHandler.HandleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/version", miscHandler.HandleVersion).Methods("GET").Name("version")
	r.HandleFunc("/health", miscHandler.HandleHealth).Methods("GET").Name("health")

	profileHandler := profile.NewHandler(s.profileRepo, s.authService)
	authSubrouter := r.PathPrefix("/a").Subrouter()
	authSubrouter.HandleFunc("/register", profileHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authSubrouter.HandleFunc("/login", profileHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authSubrouter.HandleFunc("/logout", profileHandler.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	// rate limit login/register to slow down credential stuffing
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authSubrouter.Use(middleware.RateLimit(
		reqRateLimiter, "login", s.config.LoginRateLimitAllowedPerMin, s.metricsManager,
	))
	authSubrouter.Use(middleware.Cors())

	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleUpdate).Methods("PUT", "POST", "OPTIONS").Name("update-profile")
	r.HandleFunc("/profile/targets", profileHandler.HandleTargets).Methods("GET", "OPTIONS").Name("get-targets")
	r.HandleFunc("/profile/weight", profileHandler.HandleAddWeightEntry).Methods("POST", "OPTIONS").Name("new-weight-entry")
	r.HandleFunc("/profile/weight/history", profileHandler.HandleWeightHistory).Methods("GET", "OPTIONS").Name("weight-history")

	workoutsHandler := workouts.NewHandler(s.workoutsRepo)
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/stats", workoutsHandler.HandleStats).Methods("GET", "OPTIONS").Name("workout-stats")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	mealsHandler := meals.NewHandler(s.mealsRepo, s.profileRepo, s.metricsManager)
	r.HandleFunc("/meals", mealsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/meals/day", mealsHandler.HandleDay).Methods("GET", "OPTIONS").Name("meals-today")
	r.HandleFunc("/meals/day/{date}", mealsHandler.HandleDay).Methods("GET", "OPTIONS").Name("meals-day")
	r.HandleFunc("/meals/{id}", mealsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-meal")
	r.HandleFunc("/meals/{id}/reaction", mealsHandler.HandleReaction).Methods("POST", "OPTIONS").Name("meal-reaction")

	mealGenHandler := mealgen.NewHandler(s.mealGenClient, s.profileRepo, s.metricsManager)
	r.HandleFunc("/meals/generate", mealGenHandler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-meal")

	trackersHandler := trackers.NewHandler(s.trackersRepo)
	r.HandleFunc("/trackers/hydration", trackersHandler.HandleHydration).Methods("GET", "OPTIONS").Name("hydration-today")
	r.HandleFunc("/trackers/hydration/{date}", trackersHandler.HandleHydration).Methods("GET", "OPTIONS").Name("hydration-day")
	r.HandleFunc("/trackers/hydration/glass", trackersHandler.HandleAddGlass).Methods("POST", "OPTIONS").Name("add-glass")
	r.HandleFunc("/trackers/hydration/glass", trackersHandler.HandleRemoveGlass).Methods("DELETE", "OPTIONS").Name("remove-glass")
	r.HandleFunc("/trackers/steps", trackersHandler.HandleSetSteps).Methods("POST", "OPTIONS").Name("set-steps")
	r.HandleFunc("/trackers/steps", trackersHandler.HandleSteps).Methods("GET", "OPTIONS").Name("steps-today")
	r.HandleFunc("/trackers/steps/{date}", trackersHandler.HandleSteps).Methods("GET", "OPTIONS").Name("steps-day")
	r.HandleFunc("/trackers/sleep", trackersHandler.HandleAddSleep).Methods("POST", "OPTIONS").Name("new-sleep-log")
	r.HandleFunc("/trackers/sleep/history", trackersHandler.HandleSleepHistory).Methods("GET", "OPTIONS").Name("sleep-history")

	progressionService := progression.NewService(
		s.progressionRepo,
		s.workoutsRepo,
		s.mealsRepo,
		s.profileRepo,
		s.catalog,
		s.metricsManager,
	)
	progressionHandler := progression.NewHandler(progressionService)
	r.HandleFunc("/progression/summary", progressionHandler.HandleSummary).Methods("GET", "OPTIONS").Name("progression-summary")
	r.HandleFunc("/progression/level", progressionHandler.HandleLevel).Methods("GET", "OPTIONS").Name("progression-level")
	r.HandleFunc("/progression/streak", progressionHandler.HandleStreak).Methods("GET", "OPTIONS").Name("progression-streak")
	r.HandleFunc("/progression/xp", progressionHandler.HandleAwardXP).Methods("POST", "OPTIONS").Name("award-xp")
	r.HandleFunc("/progression/xp/history", progressionHandler.HandleXPHistory).Methods("GET", "OPTIONS").Name("xp-history")
	r.HandleFunc("/progression/badges/{section}", progressionHandler.HandleBadges).Methods("GET", "OPTIONS").Name("badges")
	r.HandleFunc("/progression/badges/{section}/{id}/claim", progressionHandler.HandleClaimBadge).Methods("POST", "OPTIONS").Name("claim-badge")

	catalogHandler := progression.NewCatalogHandler(s.catalog)
	r.HandleFunc("/catalog/trophies", catalogHandler.HandleTrophies).Methods("GET", "OPTIONS").Name("catalog-trophies")
	r.HandleFunc("/catalog/badges/nutrition", catalogHandler.HandleNutritionBadges).Methods("GET", "OPTIONS").Name("catalog-nutrition-badges")
	r.HandleFunc("/catalog/badges/streak", catalogHandler.HandleStreakBadges).Methods("GET", "OPTIONS").Name("catalog-streak-badges")
	r.HandleFunc("/catalog/challenges", catalogHandler.HandleChallengeTemplates).Methods("GET", "OPTIONS").Name("catalog-challenges")
	r.HandleFunc("/catalog/rewards", catalogHandler.HandleRewards).Methods("GET", "OPTIONS").Name("catalog-rewards")

	challengesService := challenges.NewService(
		s.challengesRepo,
		s.workoutsRepo,
		s.mealsRepo,
		s.trackersRepo,
		s.profileRepo,
		s.progressionRepo,
		s.catalog,
		s.metricsManager,
	)
	challengesHandler := challenges.NewHandler(challengesService)
	r.HandleFunc("/challenges/current", challengesHandler.HandleCurrent).Methods("GET", "OPTIONS").Name("current-challenges")
	r.HandleFunc("/challenges/start", challengesHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-challenge")
	r.HandleFunc("/challenges/{id}/claim", challengesHandler.HandleClaim).Methods("POST", "OPTIONS").Name("claim-challenge")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
