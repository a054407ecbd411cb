package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sanad-app/sanad-backend/internal/app/controllers"
	appMigrations "github.com/sanad-app/sanad-backend/internal/app/migrations"
	appRepos "github.com/sanad-app/sanad-backend/internal/app/repositories"
	appRoutes "github.com/sanad-app/sanad-backend/internal/app/routes"
	appServices "github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/config"
	"github.com/sanad-app/sanad-backend/internal/db"
	appMiddleware "github.com/sanad-app/sanad-backend/internal/middleware"
	pkgAuth "github.com/sanad-app/sanad-backend/internal/pkg/auth"
	"github.com/sanad-app/sanad-backend/internal/pkg/email"
	"github.com/sanad-app/sanad-backend/internal/pkg/filestorage"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
	"github.com/sanad-app/sanad-backend/internal/pkg/pdfreport"
	"github.com/sanad-app/sanad-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage

	AuthService        appServices.AuthService
	CampaignService    appServices.CampaignService
	ParticipantService appServices.ParticipantService
	BeneficiaryService appServices.BeneficiaryService
	MedicalService     appServices.MedicalAssistanceService
	KafalaService      appServices.KafalaService
	DictionaryService  appServices.DictionaryService
	RoleService        appServices.RoleService
	UserService        appServices.UserService
	StatsService       appServices.StatsService
	ImportService      appServices.ImportService
	ExportService      appServices.ExportService
	ReportService      appServices.ReportService

	AuthController        *appControllers.AuthController
	CampaignController    *appControllers.CampaignController
	ParticipantController *appControllers.ParticipantController
	BeneficiaryController *appControllers.BeneficiaryController
	MedicalController     *appControllers.MedicalAssistanceController
	KafalaController      *appControllers.KafalaController
	DictionaryController  *appControllers.DictionaryController
	RoleController        *appControllers.RoleController
	UserController        *appControllers.UserController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads the application configuration and configures
// the global logger from it.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	appMiddleware.DebugMode = cfg.Server.Debug

	lgr := log.Logger
	lgr.Info().Str("mode", cfg.Server.Mode).Msg("Configuration loaded")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, runs pending migrations and seeds
// the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	postgres, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbPool := postgres.Pool

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(pingCtx); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database ping failed")
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); err == nil {
		migrator := appMigrations.NewMigrator(dbPool)
		if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
			dbPool.Close()
			lgr.Error().Err(err).Msg("Database migration failed")
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
	} else {
		lgr.Warn().Str("dir", migrationsDir).Msg("Migrations directory not found, skipping migrations")
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding problems should not prevent startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware in dependency order.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	pdfGenerator := pdfreport.NewGenerator(cfg.SMTP.FromName)

	deps.AuthService = appServices.NewAuthService(
		dbPool,
		deps.Repos.UserRepository,
		deps.Repos.RoleRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		emailService,
		cfg.Server.BaseURL,
	)
	deps.CampaignService = appServices.NewCampaignService(deps.Repos.CampaignRepository, deps.Repos.DictionaryRepository)
	deps.ParticipantService = appServices.NewParticipantService(
		deps.Repos.ParticipantRepository,
		deps.Repos.BeneficiaryRepository,
		deps.Repos.CampaignRepository,
	)
	deps.BeneficiaryService = appServices.NewBeneficiaryService(deps.Repos.BeneficiaryRepository, deps.Repos.CampaignRepository)
	deps.MedicalService = appServices.NewMedicalAssistanceService(
		deps.Repos.MedicalAssistanceRepository,
		deps.Repos.BeneficiaryRepository,
		deps.Repos.DictionaryRepository,
	)
	deps.KafalaService = appServices.NewKafalaService(dbPool, deps.Repos.KafalaRepository, deps.FileStorage)
	deps.DictionaryService = appServices.NewDictionaryService(deps.Repos.DictionaryRepository)
	deps.RoleService = appServices.NewRoleService(deps.Repos.RoleRepository, deps.Repos.AuditLogRepository)
	deps.UserService = appServices.NewUserService(
		dbPool,
		deps.Repos.UserRepository,
		deps.Repos.RoleRepository,
		deps.Repos.TokenRepository,
		deps.Repos.AuditLogRepository,
	)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.CampaignRepository,
		deps.Repos.ParticipantRepository,
		deps.Repos.BeneficiaryRepository,
		cfg.Reporting.HearingAidTypeName,
		cfg.Reporting.UnilateralDeviceFactor,
		cfg.Reporting.BilateralDeviceFactor,
	)
	deps.ImportService = appServices.NewImportService(
		dbPool,
		deps.Repos.CampaignRepository,
		deps.Repos.ParticipantRepository,
		deps.Repos.BeneficiaryRepository,
		deps.Repos.DictionaryRepository,
	)
	deps.ExportService = appServices.NewExportService(
		deps.Repos.CampaignRepository,
		deps.Repos.ParticipantRepository,
		deps.Repos.BeneficiaryRepository,
		deps.Repos.DictionaryRepository,
	)
	deps.ReportService = appServices.NewReportService(deps.StatsService, deps.Repos.KafalaRepository, pdfGenerator)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.JWTService,
		deps.Repos.UserRepository,
		deps.Repos.RoleRepository,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CampaignController = appControllers.NewCampaignController(deps.CampaignService, deps.StatsService, deps.ReportService)
	deps.ParticipantController = appControllers.NewParticipantController(deps.ParticipantService, deps.ImportService, deps.ExportService)
	deps.BeneficiaryController = appControllers.NewBeneficiaryController(deps.BeneficiaryService, deps.ImportService, deps.ExportService)
	deps.MedicalController = appControllers.NewMedicalAssistanceController(deps.MedicalService)
	deps.KafalaController = appControllers.NewKafalaController(deps.KafalaService, deps.ReportService)
	deps.DictionaryController = appControllers.NewDictionaryController(deps.DictionaryService)
	deps.RoleController = appControllers.NewRoleController(deps.RoleService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CampaignController,
		deps.ParticipantController,
		deps.BeneficiaryController,
		deps.MedicalController,
		deps.KafalaController,
		deps.DictionaryController,
		deps.RoleController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	lgr.Info().Msg("Router configured")
	return router
}
