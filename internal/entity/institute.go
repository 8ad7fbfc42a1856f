package entity

import (
	"time"

	"tmsiti/internal/i18n"
)

// DbAbout holds the "about the institute" page content.
type DbAbout struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ContentUZ string `gorm:"column:content_uz;type:text;not null" json:"content_uz"`
	ContentRU string `gorm:"column:content_ru;type:text" json:"content_ru"`
	ContentEN string `gorm:"column:content_en;type:text" json:"content_en"`
	PdfURL    string `gorm:"column:pdf_url;type:varchar(500)" json:"pdf_url"`
}

func (DbAbout) TableName() string {
	return "about"
}

type AboutView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PdfURL    string    `json:"pdf_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func MakeAboutView(a *DbAbout, lang i18n.Lang) AboutView {
	if a == nil {
		return AboutView{}
	}
	return AboutView{
		ID:        a.ID,
		Content:   i18n.Pick(lang, a.ContentUZ, a.ContentRU, a.ContentEN),
		PdfURL:    a.PdfURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// DbManagement is one member of the institute leadership.
type DbManagement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName         string `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	PositionUZ       string `gorm:"column:position_uz;type:varchar(255);not null" json:"position_uz"`
	PositionRU       string `gorm:"column:position_ru;type:varchar(255)" json:"position_ru"`
	PositionEN       string `gorm:"column:position_en;type:varchar(255)" json:"position_en"`
	ProfileImage     string `gorm:"column:profile_image;type:varchar(500)" json:"profile_image"`
	ReceptionDays    string `gorm:"column:reception_days;type:varchar(255)" json:"reception_days"`
	Phone            string `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Email            string `gorm:"column:email;type:varchar(255)" json:"email"`
	SpecializationUZ string `gorm:"column:specialization_uz;type:varchar(255)" json:"specialization_uz"`
	SpecializationRU string `gorm:"column:specialization_ru;type:varchar(255)" json:"specialization_ru"`
	SpecializationEN string `gorm:"column:specialization_en;type:varchar(255)" json:"specialization_en"`
	OrderIndex       int    `gorm:"column:order_index;not null;default:0" json:"order_index"`
}

func (DbManagement) TableName() string {
	return "management"
}

type ManagementView struct {
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	Position       string    `json:"position"`
	ProfileImage   string    `json:"profile_image"`
	ReceptionDays  string    `json:"reception_days"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
	OrderIndex     int       `json:"order_index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func MakeManagementView(m *DbManagement, lang i18n.Lang) ManagementView {
	if m == nil {
		return ManagementView{}
	}
	return ManagementView{
		ID:             m.ID,
		FullName:       m.FullName,
		Position:       i18n.Pick(lang, m.PositionUZ, m.PositionRU, m.PositionEN),
		ProfileImage:   m.ProfileImage,
		ReceptionDays:  m.ReceptionDays,
		Phone:          m.Phone,
		Email:          m.Email,
		Specialization: i18n.Pick(lang, m.SpecializationUZ, m.SpecializationRU, m.SpecializationEN),
		OrderIndex:     m.OrderIndex,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// DbStructure is the institute organizational chart document.
type DbStructure struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TitleUZ string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	PdfURL  string `gorm:"column:pdf_url;type:varchar(500)" json:"pdf_url"`
}

func (DbStructure) TableName() string {
	return "structure"
}

type StructureView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	PdfURL    string    `json:"pdf_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func MakeStructureView(s *DbStructure, lang i18n.Lang) StructureView {
	if s == nil {
		return StructureView{}
	}
	return StructureView{
		ID:        s.ID,
		Title:     i18n.Pick(lang, s.TitleUZ, s.TitleRU, s.TitleEN),
		PdfURL:    s.PdfURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// DbStructuralDivision is one department of the institute.
type DbStructuralDivision struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TitleUZ      string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU      string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN      string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	HeadFullName string `gorm:"column:head_full_name;type:varchar(255);not null" json:"head_full_name"`
	Phone        string `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Email        string `gorm:"column:email;type:varchar(255)" json:"email"`
	ProfileImage string `gorm:"column:profile_image;type:varchar(500)" json:"profile_image"`
}

func (DbStructuralDivision) TableName() string {
	return "structural_divisions"
}

type StructuralDivisionView struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	HeadFullName string    `json:"head_full_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func MakeStructuralDivisionView(d *DbStructuralDivision, lang i18n.Lang) StructuralDivisionView {
	if d == nil {
		return StructuralDivisionView{}
	}
	return StructuralDivisionView{
		ID:           d.ID,
		Title:        i18n.Pick(lang, d.TitleUZ, d.TitleRU, d.TitleEN),
		HeadFullName: d.HeadFullName,
		Phone:        d.Phone,
		Email:        d.Email,
		ProfileImage: d.ProfileImage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// DbVacancy is an open position at the institute.
type DbVacancy struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TitleUZ        string     `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU        string     `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN        string     `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	DescriptionUZ  string     `gorm:"column:description_uz;type:text;not null" json:"description_uz"`
	DescriptionRU  string     `gorm:"column:description_ru;type:text" json:"description_ru"`
	DescriptionEN  string     `gorm:"column:description_en;type:text" json:"description_en"`
	RequirementsUZ string     `gorm:"column:requirements_uz;type:text;not null" json:"requirements_uz"`
	RequirementsRU string     `gorm:"column:requirements_ru;type:text" json:"requirements_ru"`
	RequirementsEN string     `gorm:"column:requirements_en;type:text" json:"requirements_en"`
	Deadline       *time.Time `gorm:"column:deadline" json:"deadline"`
	ContactEmail   string     `gorm:"column:contact_email;type:varchar(255);not null" json:"contact_email"`
	Attachment     string     `gorm:"column:attachment;type:varchar(500)" json:"attachment"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (DbVacancy) TableName() string {
	return "vacancies"
}

type VacancyView struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Deadline     *time.Time `json:"deadline"`
	ContactEmail string     `json:"contact_email"`
	Attachment   string     `json:"attachment"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func MakeVacancyView(v *DbVacancy, lang i18n.Lang) VacancyView {
	if v == nil {
		return VacancyView{}
	}
	return VacancyView{
		ID:           v.ID,
		Title:        i18n.Pick(lang, v.TitleUZ, v.TitleRU, v.TitleEN),
		Description:  i18n.Pick(lang, v.DescriptionUZ, v.DescriptionRU, v.DescriptionEN),
		Requirements: i18n.Pick(lang, v.RequirementsUZ, v.RequirementsRU, v.RequirementsEN),
		Deadline:     v.Deadline,
		ContactEmail: v.ContactEmail,
		Attachment:   v.Attachment,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type AboutCreateForm struct {
	ContentUZ string `form:"content_uz" binding:"required"`
	ContentRU string `form:"content_ru"`
	ContentEN string `form:"content_en"`
}

type AboutUpdateForm struct {
	ContentUZ *string `form:"content_uz"`
	ContentRU *string `form:"content_ru"`
	ContentEN *string `form:"content_en"`
}

type ManagementCreateForm struct {
	FullName         string `form:"full_name" binding:"required,max=255"`
	PositionUZ       string `form:"position_uz" binding:"required,max=255"`
	PositionRU       string `form:"position_ru" binding:"max=255"`
	PositionEN       string `form:"position_en" binding:"max=255"`
	ReceptionDays    string `form:"reception_days" binding:"max=255"`
	Phone            string `form:"phone" binding:"max=32"`
	Email            string `form:"email" binding:"omitempty,email"`
	SpecializationUZ string `form:"specialization_uz" binding:"max=255"`
	SpecializationRU string `form:"specialization_ru" binding:"max=255"`
	SpecializationEN string `form:"specialization_en" binding:"max=255"`
	OrderIndex       int    `form:"order_index"`
}

type ManagementUpdateForm struct {
	FullName         *string `form:"full_name"`
	PositionUZ       *string `form:"position_uz"`
	PositionRU       *string `form:"position_ru"`
	PositionEN       *string `form:"position_en"`
	ReceptionDays    *string `form:"reception_days"`
	Phone            *string `form:"phone"`
	Email            *string `form:"email"`
	SpecializationUZ *string `form:"specialization_uz"`
	SpecializationRU *string `form:"specialization_ru"`
	SpecializationEN *string `form:"specialization_en"`
	OrderIndex       *int    `form:"order_index"`
}

type StructureCreateForm struct {
	TitleUZ string `form:"title_uz" binding:"required,max=255"`
	TitleRU string `form:"title_ru" binding:"max=255"`
	TitleEN string `form:"title_en" binding:"max=255"`
}

type StructureUpdateForm struct {
	TitleUZ *string `form:"title_uz"`
	TitleRU *string `form:"title_ru"`
	TitleEN *string `form:"title_en"`
}

type StructuralDivisionCreateForm struct {
	TitleUZ      string `form:"title_uz" binding:"required,max=255"`
	TitleRU      string `form:"title_ru" binding:"max=255"`
	TitleEN      string `form:"title_en" binding:"max=255"`
	HeadFullName string `form:"head_full_name" binding:"required,max=255"`
	Phone        string `form:"phone" binding:"max=32"`
	Email        string `form:"email" binding:"omitempty,email"`
}

type StructuralDivisionUpdateForm struct {
	TitleUZ      *string `form:"title_uz"`
	TitleRU      *string `form:"title_ru"`
	TitleEN      *string `form:"title_en"`
	HeadFullName *string `form:"head_full_name"`
	Phone        *string `form:"phone"`
	Email        *string `form:"email"`
}

type VacancyCreateForm struct {
	TitleUZ        string `form:"title_uz" binding:"required,max=255"`
	TitleRU        string `form:"title_ru" binding:"max=255"`
	TitleEN        string `form:"title_en" binding:"max=255"`
	DescriptionUZ  string `form:"description_uz" binding:"required"`
	DescriptionRU  string `form:"description_ru"`
	DescriptionEN  string `form:"description_en"`
	RequirementsUZ string `form:"requirements_uz" binding:"required"`
	RequirementsRU string `form:"requirements_ru"`
	RequirementsEN string `form:"requirements_en"`
	Deadline       string `form:"deadline"`
	ContactEmail   string `form:"contact_email" binding:"required,email"`
	IsActive       *bool  `form:"is_active"`
}

type VacancyUpdateForm struct {
	TitleUZ        *string `form:"title_uz"`
	TitleRU        *string `form:"title_ru"`
	TitleEN        *string `form:"title_en"`
	DescriptionUZ  *string `form:"description_uz"`
	DescriptionRU  *string `form:"description_ru"`
	DescriptionEN  *string `form:"description_en"`
	RequirementsUZ *string `form:"requirements_uz"`
	RequirementsRU *string `form:"requirements_ru"`
	RequirementsEN *string `form:"requirements_en"`
	Deadline       *string `form:"deadline"`
	ContactEmail   *string `form:"contact_email"`
	IsActive       *bool   `form:"is_active"`
}
