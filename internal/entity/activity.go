package entity

import (
	"time"

	"tmsiti/internal/i18n"
)

// DbManagementSystem is an "activities" entry describing one management
// system the institute certifies.
type DbManagementSystem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TitleUZ       string `gorm:"column:title_uz;type:varchar(500);not null" json:"title_uz"`
	TitleRU       string `gorm:"column:title_ru;type:varchar(500)" json:"title_ru"`
	TitleEN       string `gorm:"column:title_en;type:varchar(500)" json:"title_en"`
	DescriptionUZ string `gorm:"column:description_uz;type:text;not null" json:"description_uz"`
	DescriptionRU string `gorm:"column:description_ru;type:text" json:"description_ru"`
	DescriptionEN string `gorm:"column:description_en;type:text" json:"description_en"`
	Pdf           string `gorm:"column:pdf;type:varchar(500)" json:"pdf"`
}

func (DbManagementSystem) TableName() string {
	return "management_systems"
}

type ManagementSystemView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Pdf         string    `json:"pdf"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func MakeManagementSystemView(m *DbManagementSystem, lang i18n.Lang) ManagementSystemView {
	if m == nil {
		return ManagementSystemView{}
	}
	return ManagementSystemView{
		ID:          m.ID,
		Title:       i18n.Pick(lang, m.TitleUZ, m.TitleRU, m.TitleEN),
		Description: i18n.Pick(lang, m.DescriptionUZ, m.DescriptionRU, m.DescriptionEN),
		Pdf:         m.Pdf,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type ManagementSystemCreateForm struct {
	TitleUZ       string `form:"title_uz" binding:"required,max=500"`
	TitleRU       string `form:"title_ru" binding:"max=500"`
	TitleEN       string `form:"title_en" binding:"max=500"`
	DescriptionUZ string `form:"description_uz" binding:"required"`
	DescriptionRU string `form:"description_ru"`
	DescriptionEN string `form:"description_en"`
}

type ManagementSystemUpdateForm struct {
	TitleUZ       *string `form:"title_uz"`
	TitleRU       *string `form:"title_ru"`
	TitleEN       *string `form:"title_en"`
	DescriptionUZ *string `form:"description_uz"`
	DescriptionRU *string `form:"description_ru"`
	DescriptionEN *string `form:"description_en"`
}
