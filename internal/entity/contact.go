package entity

import (
	"time"

	"tmsiti/internal/i18n"
)

// DbContact is a public contact-form submission. Created anonymously, never
// updated, removed only by an administrator.
type DbContact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Fio   string `gorm:"column:fio;type:varchar(255);not null" json:"fio"`
	Email string `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Phone string `gorm:"column:phone;type:varchar(32);not null" json:"phone"`

	CategoryUZ string `gorm:"column:category_uz;type:varchar(255)" json:"category_uz"`
	CategoryRU string `gorm:"column:category_ru;type:varchar(255)" json:"category_ru"`
	CategoryEN string `gorm:"column:category_en;type:varchar(255)" json:"category_en"`

	MessageUZ string `gorm:"column:message_uz;type:text" json:"message_uz"`
	MessageRU string `gorm:"column:message_ru;type:text" json:"message_ru"`
	MessageEN string `gorm:"column:message_en;type:text" json:"message_en"`

	File string `gorm:"column:file;type:varchar(500)" json:"file"`
}

func (DbContact) TableName() string {
	return "contact"
}

// ContactCreateRequest is bound from the multipart form; the optional
// attachment travels as a separate file part.
type ContactCreateRequest struct {
	Fio        string `form:"fio" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Phone      string `form:"phone" binding:"required"`
	CategoryUZ string `form:"category_uz"`
	CategoryRU string `form:"category_ru"`
	CategoryEN string `form:"category_en"`
	MessageUZ  string `form:"message_uz" binding:"required"`
	MessageRU  string `form:"message_ru"`
	MessageEN  string `form:"message_en"`
}

type ContactView struct {
	ID        uint      `json:"id"`
	Fio       string    `json:"fio"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

func MakeContactView(c *DbContact, lang i18n.Lang) ContactView {
	if c == nil {
		return ContactView{}
	}
	return ContactView{
		ID:        c.ID,
		Fio:       c.Fio,
		Email:     c.Email,
		Phone:     c.Phone,
		Category:  i18n.Pick(lang, c.CategoryUZ, c.CategoryRU, c.CategoryEN),
		Message:   i18n.Pick(lang, c.MessageUZ, c.MessageRU, c.MessageEN),
		File:      c.File,
		CreatedAt: c.CreatedAt,
	}
}
