package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CampaignRepository          *CampaignRepository
	ParticipantRepository       *ParticipantRepository
	BeneficiaryRepository       *BeneficiaryRepository
	MedicalAssistanceRepository *MedicalAssistanceRepository
	KafalaRepository            *KafalaRepository
	DictionaryRepository        *DictionaryRepository
	RoleRepository              *RoleRepository
	UserRepository              *UserRepository
	TokenRepository             *TokenRepository
	AuditLogRepository          *AuditLogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CampaignRepository:          NewCampaignRepository(db),
		ParticipantRepository:       NewParticipantRepository(db),
		BeneficiaryRepository:       NewBeneficiaryRepository(db),
		MedicalAssistanceRepository: NewMedicalAssistanceRepository(db),
		KafalaRepository:            NewKafalaRepository(db),
		DictionaryRepository:        NewDictionaryRepository(db),
		RoleRepository:              NewRoleRepository(db),
		UserRepository:              NewUserRepository(db),
		TokenRepository:             NewTokenRepository(db),
		AuditLogRepository:          NewAuditLogRepository(db),
	}
}
