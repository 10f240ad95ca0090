package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vetstock/docs"
	"vetstock/internal/adapters/auth/session"
	mem "vetstock/internal/adapters/storage/memory"
	pg "vetstock/internal/adapters/storage/postgres"
	"vetstock/internal/config"
	"vetstock/internal/domain/alerts"
	"vetstock/internal/domain/animals"
	"vetstock/internal/domain/billing"
	"vetstock/internal/domain/dashboard"
	"vetstock/internal/domain/entitlement"
	"vetstock/internal/domain/products"
	"vetstock/internal/domain/users"
	"vetstock/internal/domain/vaccines"
	"vetstock/internal/metrics"
	"vetstock/internal/middleware"
	billingport "vetstock/internal/ports/billing"
	"vetstock/internal/platform/logger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, prueba Config.DBDSN y si no in-memory.
	DB *sql.DB

	// nil => sesiones en memoria.
	SessionStore session.Store

	// nil => sin rutas de billing.
	BillingProvider billingport.Provider

	// nil => registry propio (los tests no chocan con el global).
	Registry *prometheus.Registry

	// nil => time.Now. Reloj de usuarios y del guard de trial.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	collector := metrics.NewCollector(reg)

	var (
		userRepo    users.Repository
		animalRepo  animals.Repository
		productRepo products.Repository
		vaccineRepo vaccines.Repository
		alertRepo   alerts.Repository
	)

	db := opts.DB
	if db == nil && cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Warn("postgres unavailable, using in-memory storage", map[string]any{"err": err})
		} else {
			db = opened
		}
	}

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		animalRepo = pg.NewAnimalsRepo(db)
		productRepo = pg.NewProductsRepo(db)
		vaccineRepo = pg.NewVaccinesRepo(db)
		alertRepo = pg.NewAlertsRepo(db)
	} else {
		userRepo = mem.NewUserRepo()
		animalRepo = mem.NewAnimalRepo()
		productRepo = mem.NewProductRepo()
		vaccineRepo = mem.NewVaccineRepo()
		alertRepo = mem.NewAlertRepo()
	}

	// Services por módulo
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	usersSvc := users.NewService(userRepo).WithClock(now)
	alertsSvc := alerts.NewService(alertRepo, log, collector)
	animalsSvc := animals.NewService(animalRepo)
	productsSvc := products.NewService(productRepo, alertsSvc)
	vaccinesSvc := vaccines.NewService(vaccineRepo, animalsSvc, alertsSvc)
	dashboardSvc := dashboard.NewService(productsSvc, animalsSvc, vaccinesSvc)

	if cfg.SeedAdminEmail != "" {
		seedAdmin(usersSvc, cfg, log)
	}

	store := opts.SessionStore
	if store == nil {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, usersSvc, session.Options{
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})
	guard := entitlement.NewGuard(usersSvc).WithClock(now)
	limiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))
	// sin proxy propio los headers de IP los controla el cliente (y el rate limit por IP)
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.AuthContext(sessions, sessions.CookieName()))
	r.Use(middleware.RequestLogger(log, collector))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, sessions, limiter.Middleware)

	// sesión + trial/suscripción vigente
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireAuth)
		gr.Use(guard.RequireActive)

		products.RegisterRoutes(gr, productsSvc)
		animals.RegisterRoutes(gr, animalsSvc)
		vaccines.RegisterRoutes(gr, vaccinesSvc, animalsSvc)
		alerts.RegisterRoutes(gr, alertsSvc)
		dashboard.RegisterRoutes(gr, dashboardSvc)
	})

	if opts.BillingProvider != nil {
		billingSvc := billing.NewService(opts.BillingProvider, usersSvc, cfg.StripePriceID, log)
		billing.RegisterRoutes(r, billingSvc)
	} else {
		log.Info("billing disabled: no payment provider configured", nil)
	}

	return r
}

func seedAdmin(svc *users.Service, cfg config.Config, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := svc.EnsureAdmin(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	if err != nil {
		log.Error("seed admin failed", map[string]any{"email": cfg.SeedAdminEmail, "err": err})
		return
	}
	if created {
		log.Info("seed admin created", map[string]any{"email": cfg.SeedAdminEmail})
	}
}
