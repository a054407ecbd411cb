package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/sanad-app/sanad-backend/internal/app/models"
	appRepos "github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/config"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	pkgAuth "github.com/sanad-app/sanad-backend/internal/pkg/auth"
)

// Communes of the Agadir prefecture served by the association. Additional
// communes are managed through the dictionary endpoints.
var defaultCommunes = []string{
	"Agadir",
	"Anza",
	"Tikiouine",
	"Dcheira El Jihadia",
	"Inezgane",
	"Aït Melloul",
	"Temsia",
	"Drarga",
	"Aourir",
	"Taghazout",
}

var defaultAssistanceTypes = []string{
	"Hearing aid",
	"Wheelchair",
	"Crutches",
	"Eyeglasses",
	"Medical care",
}

var defaultDonationStates = []string{
	"Neuf",
	"Bon état",
	"À réparer",
	"Hors service",
}

var defaultFileStates = []string{
	"Complet",
	"Incomplet",
	"En cours de traitement",
	"Clôturé",
}

// CreateDefaultData seeds the reference dictionaries, the protected admin
// role and the initial administrator account. Every step is idempotent so
// the function runs on each startup after migrations.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	dictionaryRepo := appRepos.NewDictionaryRepository(dbPool)
	roleRepo := appRepos.NewRoleRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	seedEntries := func(kind appModels.DictionaryKind, names []string) {
		for _, name := range names {
			entry := &appModels.DictionaryEntry{Name: name}
			err := dictionaryRepo.Create(ctx, kind, entry)
			if err != nil && !errors.Is(err, apperrors.ErrEntryAlreadyExists) {
				lgr.Error().Err(err).Str("kind", string(kind)).Str("name", name).Msg("Error seeding dictionary entry")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	seedEntries(appModels.DictCommunes, defaultCommunes)
	seedEntries(appModels.DictAssistanceTypes, defaultAssistanceTypes)
	seedEntries(appModels.DictDonationStates, defaultDonationStates)
	seedEntries(appModels.DictFileStates, defaultFileStates)

	adminRoleID, err := seedAdminRole(ctx, roleRepo, lgr)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if adminRoleID > 0 {
		if err := seedAdminUser(ctx, userRepo, adminRoleID, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

// seedAdminRole creates the protected admin_si role with the full permission
// catalog. When the role already exists its permissions are refreshed so new
// catalog keys reach existing installations.
func seedAdminRole(ctx context.Context, roleRepo *appRepos.RoleRepository, lgr zerolog.Logger) (int64, error) {
	role := &appModels.Role{
		Name:        appModels.AdminRoleName,
		DisplayName: "Administrateur SI",
		Permissions: appModels.PermissionCatalog,
		IsActive:    true,
	}

	err := roleRepo.Create(ctx, role)
	if err == nil {
		lgr.Info().Int64("roleId", role.ID).Msg("Created admin role")
		return role.ID, nil
	}
	if !errors.Is(err, apperrors.ErrRoleAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating admin role")
		return 0, err
	}

	existing, err := roleRepo.GetByName(ctx, appModels.AdminRoleName)
	if err != nil {
		lgr.Error().Err(err).Msg("Error loading existing admin role")
		return 0, err
	}

	if len(existing.Permissions) != len(appModels.PermissionCatalog) {
		existing.Permissions = appModels.PermissionCatalog
		existing.IsActive = true
		if err := roleRepo.Update(ctx, existing); err != nil {
			lgr.Error().Err(err).Msg("Error refreshing admin role permissions")
			return existing.ID, err
		}
		lgr.Info().Int64("roleId", existing.ID).Msg("Refreshed admin role permissions")
	}

	return existing.ID, nil
}

// seedAdminUser creates the bootstrap administrator account. Credentials come
// from SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD; the defaults are meant for
// development only.
func seedAdminUser(ctx context.Context, userRepo *appRepos.UserRepository, roleID int64, lgr zerolog.Logger) error {
	email := config.GetEnv("SEED_ADMIN_EMAIL", "admin@sanad.ma")
	password := config.GetEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		password = "ChangeMe123!"
		lgr.Warn().Str("email", email).Msg("SEED_ADMIN_PASSWORD not set, using the default development password")
	}

	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:         email,
		Password:      hashed,
		FirstName:     "Admin",
		LastName:      "SI",
		RoleID:        roleID,
		IsActive:      true,
		EmailVerified: true,
	}

	err = userRepo.Create(ctx, admin)
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("userId", admin.ID).Str("email", email).Msg("Created admin user")
	return nil
}
