package model

import (
	"context"

	"tmsiti/internal/entity"
)

// Repository defines the persistence operations of the application.
type Repository interface {
	// Accounts.
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates map[string]interface{}) error
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByPhone(ctx context.Context, phone string) (*entity.DbUser, error)
	GetUserByResetToken(ctx context.Context, token string) (*entity.DbUser, error)
	ListUsers(ctx context.Context, params *entity.UserQuery) ([]entity.DbUser, *entity.PageMeta, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// Email verification codes, one per address.
	UpsertVerificationCode(ctx context.Context, code *entity.DbEmailVerificationCode) error
	GetVerificationCode(ctx context.Context, email string) (*entity.DbEmailVerificationCode, error)
	DeleteVerificationCode(ctx context.Context, email string) error

	// News section.
	CreateNews(ctx context.Context, news *entity.DbNews) error
	UpdateNews(ctx context.Context, id uint, updates map[string]interface{}) error
	GetNews(ctx context.Context, id uint) (*entity.DbNews, error)
	ListNews(ctx context.Context, params *entity.ListQuery) ([]entity.DbNews, *entity.PageMeta, error)
	DeleteNews(ctx context.Context, id uint) error

	CreateAntiCorruption(ctx context.Context, item *entity.DbAntiCorruption) error
	UpdateAntiCorruption(ctx context.Context, id uint, updates map[string]interface{}) error
	GetAntiCorruption(ctx context.Context, id uint) (*entity.DbAntiCorruption, error)
	ListAntiCorruption(ctx context.Context, params *entity.ListQuery) ([]entity.DbAntiCorruption, *entity.PageMeta, error)
	DeleteAntiCorruption(ctx context.Context, id uint) error

	// Regulatory documents.
	CreateShnq(ctx context.Context, doc *entity.DbShnq) error
	UpdateShnq(ctx context.Context, id uint, updates map[string]interface{}) error
	GetShnq(ctx context.Context, id uint) (*entity.DbShnq, error)
	ListShnq(ctx context.Context, params *entity.ListQuery) ([]entity.DbShnq, *entity.PageMeta, error)
	DeleteShnq(ctx context.Context, id uint) error

	CreateStandard(ctx context.Context, doc *entity.DbStandard) error
	UpdateStandard(ctx context.Context, id uint, updates map[string]interface{}) error
	GetStandard(ctx context.Context, id uint) (*entity.DbStandard, error)
	ListStandards(ctx context.Context, params *entity.ListQuery) ([]entity.DbStandard, *entity.PageMeta, error)
	DeleteStandard(ctx context.Context, id uint) error

	CreateBuildingRegulation(ctx context.Context, doc *entity.DbBuildingRegulation) error
	UpdateBuildingRegulation(ctx context.Context, id uint, updates map[string]interface{}) error
	GetBuildingRegulation(ctx context.Context, id uint) (*entity.DbBuildingRegulation, error)
	ListBuildingRegulations(ctx context.Context, params *entity.ListQuery) ([]entity.DbBuildingRegulation, *entity.PageMeta, error)
	DeleteBuildingRegulation(ctx context.Context, id uint) error

	CreateSmetaResursNorm(ctx context.Context, doc *entity.DbSmetaResursNorm) error
	UpdateSmetaResursNorm(ctx context.Context, id uint, updates map[string]interface{}) error
	GetSmetaResursNorm(ctx context.Context, id uint) (*entity.DbSmetaResursNorm, error)
	ListSmetaResursNorms(ctx context.Context, params *entity.ListQuery) ([]entity.DbSmetaResursNorm, *entity.PageMeta, error)
	DeleteSmetaResursNorm(ctx context.Context, id uint) error

	CreateTechnicalRegulation(ctx context.Context, doc *entity.DbTechnicalRegulation) error
	UpdateTechnicalRegulation(ctx context.Context, id uint, updates map[string]interface{}) error
	GetTechnicalRegulation(ctx context.Context, id uint) (*entity.DbTechnicalRegulation, error)
	ListTechnicalRegulations(ctx context.Context, params *entity.ListQuery) ([]entity.DbTechnicalRegulation, *entity.PageMeta, error)
	DeleteTechnicalRegulation(ctx context.Context, id uint) error

	CreateReference(ctx context.Context, doc *entity.DbReference) error
	UpdateReference(ctx context.Context, id uint, updates map[string]interface{}) error
	GetReference(ctx context.Context, id uint) (*entity.DbReference, error)
	ListReferences(ctx context.Context, params *entity.ListQuery) ([]entity.DbReference, *entity.PageMeta, error)
	DeleteReference(ctx context.Context, id uint) error

	// Institute section.
	CreateAbout(ctx context.Context, item *entity.DbAbout) error
	UpdateAbout(ctx context.Context, id uint, updates map[string]interface{}) error
	GetAbout(ctx context.Context, id uint) (*entity.DbAbout, error)
	ListAbout(ctx context.Context, params *entity.ListQuery) ([]entity.DbAbout, *entity.PageMeta, error)
	DeleteAbout(ctx context.Context, id uint) error

	CreateManagement(ctx context.Context, item *entity.DbManagement) error
	UpdateManagement(ctx context.Context, id uint, updates map[string]interface{}) error
	GetManagement(ctx context.Context, id uint) (*entity.DbManagement, error)
	ListManagement(ctx context.Context, params *entity.ListQuery) ([]entity.DbManagement, *entity.PageMeta, error)
	DeleteManagement(ctx context.Context, id uint) error

	CreateStructure(ctx context.Context, item *entity.DbStructure) error
	UpdateStructure(ctx context.Context, id uint, updates map[string]interface{}) error
	GetStructure(ctx context.Context, id uint) (*entity.DbStructure, error)
	ListStructures(ctx context.Context, params *entity.ListQuery) ([]entity.DbStructure, *entity.PageMeta, error)
	DeleteStructure(ctx context.Context, id uint) error

	CreateStructuralDivision(ctx context.Context, item *entity.DbStructuralDivision) error
	UpdateStructuralDivision(ctx context.Context, id uint, updates map[string]interface{}) error
	GetStructuralDivision(ctx context.Context, id uint) (*entity.DbStructuralDivision, error)
	ListStructuralDivisions(ctx context.Context, params *entity.ListQuery) ([]entity.DbStructuralDivision, *entity.PageMeta, error)
	DeleteStructuralDivision(ctx context.Context, id uint) error

	CreateVacancy(ctx context.Context, item *entity.DbVacancy) error
	UpdateVacancy(ctx context.Context, id uint, updates map[string]interface{}) error
	GetVacancy(ctx context.Context, id uint) (*entity.DbVacancy, error)
	ListVacancies(ctx context.Context, params *entity.ListQuery) ([]entity.DbVacancy, *entity.PageMeta, error)
	ListActiveVacancies(ctx context.Context, params *entity.ListQuery) ([]entity.DbVacancy, *entity.PageMeta, error)
	DeleteVacancy(ctx context.Context, id uint) error

	// Activities.
	CreateManagementSystem(ctx context.Context, item *entity.DbManagementSystem) error
	UpdateManagementSystem(ctx context.Context, id uint, updates map[string]interface{}) error
	GetManagementSystem(ctx context.Context, id uint) (*entity.DbManagementSystem, error)
	ListManagementSystems(ctx context.Context, params *entity.ListQuery) ([]entity.DbManagementSystem, *entity.PageMeta, error)
	DeleteManagementSystem(ctx context.Context, id uint) error

	// Contact submissions. Created anonymously, never updated.
	CreateContact(ctx context.Context, item *entity.DbContact) error
	GetContact(ctx context.Context, id uint) (*entity.DbContact, error)
	ListContacts(ctx context.Context, params *entity.ListQuery) ([]entity.DbContact, *entity.PageMeta, error)
	DeleteContact(ctx context.Context, id uint) error
}
