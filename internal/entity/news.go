package entity

import (
	"time"

	"tmsiti/internal/i18n"
)

// DbNews is a published news item with three-language title and content.
type DbNews struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TitleUZ     string     `gorm:"column:title_uz;type:varchar(500);not null" json:"title_uz"`
	TitleRU     string     `gorm:"column:title_ru;type:varchar(500)" json:"title_ru"`
	TitleEN     string     `gorm:"column:title_en;type:varchar(500)" json:"title_en"`
	ContentUZ   string     `gorm:"column:content_uz;type:text;not null" json:"content_uz"`
	ContentRU   string     `gorm:"column:content_ru;type:text" json:"content_ru"`
	ContentEN   string     `gorm:"column:content_en;type:text" json:"content_en"`
	Image       string     `gorm:"column:image;type:varchar(500)" json:"image"`
	PublishedAt *time.Time `gorm:"column:published_at;index" json:"published_at"`
}

func (DbNews) TableName() string {
	return "news"
}

// NewsView is the localized projection of a news item.
type NewsView struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Image       string     `json:"image"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MakeNewsView localizes a news record for the requested language.
func MakeNewsView(n *DbNews, lang i18n.Lang) NewsView {
	if n == nil {
		return NewsView{}
	}
	return NewsView{
		ID:          n.ID,
		Title:       i18n.Pick(lang, n.TitleUZ, n.TitleRU, n.TitleEN),
		Content:     i18n.Pick(lang, n.ContentUZ, n.ContentRU, n.ContentEN),
		Image:       n.Image,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

// NewsCreateForm is bound from the multipart create form; the cover image
// travels as a separate file part.
type NewsCreateForm struct {
	TitleUZ     string `form:"title_uz" binding:"required,max=500"`
	TitleRU     string `form:"title_ru" binding:"max=500"`
	TitleEN     string `form:"title_en" binding:"max=500"`
	ContentUZ   string `form:"content_uz" binding:"required"`
	ContentRU   string `form:"content_ru"`
	ContentEN   string `form:"content_en"`
	PublishedAt string `form:"published_at"`
}

type NewsUpdateForm struct {
	TitleUZ     *string `form:"title_uz"`
	TitleRU     *string `form:"title_ru"`
	TitleEN     *string `form:"title_en"`
	ContentUZ   *string `form:"content_uz"`
	ContentRU   *string `form:"content_ru"`
	ContentEN   *string `form:"content_en"`
	PublishedAt *string `form:"published_at"`
}

// DbAntiCorruption is an anti-corruption notice with an optional attachment.
type DbAntiCorruption struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TitleUZ   string `gorm:"column:title_uz;type:varchar(500);not null" json:"title_uz"`
	TitleRU   string `gorm:"column:title_ru;type:varchar(500)" json:"title_ru"`
	TitleEN   string `gorm:"column:title_en;type:varchar(500)" json:"title_en"`
	ContentUZ string `gorm:"column:content_uz;type:text;not null" json:"content_uz"`
	ContentRU string `gorm:"column:content_ru;type:text" json:"content_ru"`
	ContentEN string `gorm:"column:content_en;type:text" json:"content_en"`
	File      string `gorm:"column:file;type:varchar(500)" json:"file"`
}

func (DbAntiCorruption) TableName() string {
	return "anti_corruption"
}

type AntiCorruptionView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func MakeAntiCorruptionView(a *DbAntiCorruption, lang i18n.Lang) AntiCorruptionView {
	if a == nil {
		return AntiCorruptionView{}
	}
	return AntiCorruptionView{
		ID:        a.ID,
		Title:     i18n.Pick(lang, a.TitleUZ, a.TitleRU, a.TitleEN),
		Content:   i18n.Pick(lang, a.ContentUZ, a.ContentRU, a.ContentEN),
		File:      a.File,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type AntiCorruptionCreateForm struct {
	TitleUZ   string `form:"title_uz" binding:"required,max=500"`
	TitleRU   string `form:"title_ru" binding:"max=500"`
	TitleEN   string `form:"title_en" binding:"max=500"`
	ContentUZ string `form:"content_uz" binding:"required"`
	ContentRU string `form:"content_ru"`
	ContentEN string `form:"content_en"`
}

type AntiCorruptionUpdateForm struct {
	TitleUZ   *string `form:"title_uz"`
	TitleRU   *string `form:"title_ru"`
	TitleEN   *string `form:"title_en"`
	ContentUZ *string `form:"content_uz"`
	ContentRU *string `form:"content_ru"`
	ContentEN *string `form:"content_en"`
}
