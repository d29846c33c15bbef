package app

import (
	"context"

	authAPI "slot_backend/internal/api/auth"
	reelAPI "slot_backend/internal/api/reel"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/middleware"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/auth_repo"
	"slot_backend/internal/repository/reel_repo"
	"slot_backend/internal/repository/reel_stats_repo"
	"slot_backend/internal/repository/user_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/auth"
	"slot_backend/internal/service/reel"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Целевая отдача слота в процентах
const targetRTP = 95.0

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Reel bits
	reelCfg       []config.ReelConfig
	reelRepo      repository.ReelRepository
	reelStatsRepo repository.ReelStatsRepository
	reelServ      service.ReelService
	reelHand      *reelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) ReelCfg() []config.ReelConfig {
	if sp.reelCfg == nil {
		cfg, err := env.NewReelConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get reel config: " + err.Error())
		}

		sp.reelCfg = cfg
	}
	return sp.reelCfg
}

func (sp *ServiceProvider) ReelRepository(ctx context.Context) repository.ReelRepository {
	if sp.reelRepo == nil {
		sp.reelRepo = reel_repo.NewReelRepository(sp.DBClient(ctx))
	}
	return sp.reelRepo
}

func (sp *ServiceProvider) ReelStatsRepository() repository.ReelStatsRepository {
	if sp.reelStatsRepo == nil {
		sp.reelStatsRepo = reel_stats_repo.NewReelStatsRepository(len(sp.ReelCfg()), targetRTP)
	}
	return sp.reelStatsRepo
}

func (sp *ServiceProvider) ReelService(ctx context.Context) service.ReelService {
	if sp.reelServ == nil {
		sp.reelServ = reel.NewReelService(sp.ReelCfg(), sp.ReelRepository(ctx), sp.UserRepo(ctx), sp.ReelStatsRepository(), sp.TXManager(ctx))
	}
	return sp.reelServ
}

func (sp *ServiceProvider) ReelHandler(ctx context.Context) *reelAPI.Handler {
	if sp.reelHand == nil {
		sp.reelHand = reelAPI.NewHandler(reelAPI.HandlerDeps{
			Serv: sp.ReelService(ctx),
		})
	}
	return sp.reelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Reel endpoints (под access токеном)
		reelHandler := sp.ReelHandler(ctx)
		r.Route("/reel", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/spin", reelHandler.Spin)
			rr.Post("/simulate", reelHandler.Simulate)
			rr.Post("/deposit", reelHandler.Deposit)
			rr.Get("/check-data", reelHandler.CheckData)
			rr.Get("/paytable", reelHandler.Paytable)
		})

		sp.router = r
	}

	return sp.router
}
