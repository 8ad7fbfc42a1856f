package entity

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"tmsiti/internal/i18n"
)

// Regulatory document codes follow one strict ruleset across all families:
// 2..20 characters, starting alphanumeric, limited punctuation. Duplicate
// codes are rejected by the unique index.
var codePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .\-/]{1,19}$`)

var (
	ErrInvalidDocumentCode = errors.New("document code must be 2-20 chars of letters, digits, space, dot, dash, or slash")
	ErrTitleRequired       = errors.New("default-language title is required")
	ErrTitleTooLong        = errors.New("title exceeds 255 characters")
	ErrDescriptionRequired = errors.New("default-language description is required")
)

// ValidateDocumentCode enforces the canonical code ruleset.
func ValidateDocumentCode(code string) error {
	if !codePattern.MatchString(strings.TrimSpace(code)) {
		return ErrInvalidDocumentCode
	}
	return nil
}

// ValidateLocalizedTitle checks the required uz variant and the length cap on
// every provided variant.
func ValidateLocalizedTitle(uz, ru, en string) error {
	if strings.TrimSpace(uz) == "" {
		return ErrTitleRequired
	}
	for _, v := range []string{uz, ru, en} {
		if len(v) > 255 {
			return ErrTitleTooLong
		}
	}
	return nil
}

// ValidateTitleUpdate checks only the variants supplied in a partial update.
// A provided uz title must stay non-blank; every provided variant keeps the
// length cap.
func ValidateTitleUpdate(uz, ru, en *string) error {
	if uz != nil && strings.TrimSpace(*uz) == "" {
		return ErrTitleRequired
	}
	for _, v := range []*string{uz, ru, en} {
		if v != nil && len(*v) > 255 {
			return ErrTitleTooLong
		}
	}
	return nil
}

// ValidateRequiredDescription enforces the non-blank uz description where the
// family requires one.
func ValidateRequiredDescription(uz string) error {
	if strings.TrimSpace(uz) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// DbShnq is an urban construction norm (SHNQ) entry.
type DbShnq struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Subsystem string `gorm:"column:subsystem;type:varchar(50);not null" json:"subsystem"`
	Group     string `gorm:"column:doc_group;type:varchar(20);not null" json:"group"`
	Code      string `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	TitleUZ   string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU   string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN   string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	Link      string `gorm:"column:link;type:varchar(500)" json:"link"`
}

func (DbShnq) TableName() string {
	return "shnq"
}

type ShnqView struct {
	ID        uint      `json:"id"`
	Subsystem string    `json:"subsystem"`
	Group     string    `json:"group"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

func MakeShnqView(s *DbShnq, lang i18n.Lang) ShnqView {
	if s == nil {
		return ShnqView{}
	}
	return ShnqView{
		ID:        s.ID,
		Subsystem: s.Subsystem,
		Group:     s.Group,
		Code:      s.Code,
		Title:     i18n.Pick(lang, s.TitleUZ, s.TitleRU, s.TitleEN),
		Link:      s.Link,
		CreatedAt: s.CreatedAt,
	}
}

type ShnqCreateRequest struct {
	Subsystem string `json:"subsystem" binding:"required,max=50"`
	Group     string `json:"group" binding:"required,max=20"`
	Code      string `json:"code" binding:"required"`
	TitleUZ   string `json:"title_uz" binding:"required"`
	TitleRU   string `json:"title_ru"`
	TitleEN   string `json:"title_en"`
	Link      string `json:"link" binding:"omitempty,max=500"`
}

type ShnqUpdateRequest struct {
	Subsystem *string `json:"subsystem,omitempty"`
	Group     *string `json:"group,omitempty"`
	Code      *string `json:"code,omitempty"`
	TitleUZ   *string `json:"title_uz,omitempty"`
	TitleRU   *string `json:"title_ru,omitempty"`
	TitleEN   *string `json:"title_en,omitempty"`
	Link      *string `json:"link,omitempty"`
}

// DbStandard is a state standard entry.
type DbStandard struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code          string `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	TitleUZ       string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU       string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN       string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	DescriptionUZ string `gorm:"column:description_uz;type:text;not null" json:"description_uz"`
	DescriptionRU string `gorm:"column:description_ru;type:text" json:"description_ru"`
	DescriptionEN string `gorm:"column:description_en;type:text" json:"description_en"`
	Link          string `gorm:"column:link;type:varchar(500)" json:"link"`
}

func (DbStandard) TableName() string {
	return "standards"
}

type StandardView struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}

func MakeStandardView(s *DbStandard, lang i18n.Lang) StandardView {
	if s == nil {
		return StandardView{}
	}
	return StandardView{
		ID:          s.ID,
		Code:        s.Code,
		Title:       i18n.Pick(lang, s.TitleUZ, s.TitleRU, s.TitleEN),
		Description: i18n.Pick(lang, s.DescriptionUZ, s.DescriptionRU, s.DescriptionEN),
		Link:        s.Link,
		CreatedAt:   s.CreatedAt,
	}
}

type StandardCreateRequest struct {
	Code          string `json:"code" binding:"required"`
	TitleUZ       string `json:"title_uz" binding:"required"`
	TitleRU       string `json:"title_ru"`
	TitleEN       string `json:"title_en"`
	DescriptionUZ string `json:"description_uz" binding:"required"`
	DescriptionRU string `json:"description_ru"`
	DescriptionEN string `json:"description_en"`
	Link          string `json:"link" binding:"omitempty,max=500"`
}

type StandardUpdateRequest struct {
	Code          *string `json:"code,omitempty"`
	TitleUZ       *string `json:"title_uz,omitempty"`
	TitleRU       *string `json:"title_ru,omitempty"`
	TitleEN       *string `json:"title_en,omitempty"`
	DescriptionUZ *string `json:"description_uz,omitempty"`
	DescriptionRU *string `json:"description_ru,omitempty"`
	DescriptionEN *string `json:"description_en,omitempty"`
	Link          *string `json:"link,omitempty"`
}

// DbBuildingRegulation is a building regulation entry.
type DbBuildingRegulation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Number  string `gorm:"column:number;type:varchar(50);not null" json:"number"`
	Code    string `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	TitleUZ string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	Link    string `gorm:"column:link;type:varchar(500)" json:"link"`
}

func (DbBuildingRegulation) TableName() string {
	return "building_regulations"
}

type BuildingRegulationView struct {
	ID        uint      `json:"id"`
	Number    string    `json:"number"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

func MakeBuildingRegulationView(b *DbBuildingRegulation, lang i18n.Lang) BuildingRegulationView {
	if b == nil {
		return BuildingRegulationView{}
	}
	return BuildingRegulationView{
		ID:        b.ID,
		Number:    b.Number,
		Code:      b.Code,
		Title:     i18n.Pick(lang, b.TitleUZ, b.TitleRU, b.TitleEN),
		Link:      b.Link,
		CreatedAt: b.CreatedAt,
	}
}

// DbSmetaResursNorm is an estimate/resource norm (SRN) with a required file.
type DbSmetaResursNorm struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SrnCode         string `gorm:"column:srn_code;type:varchar(20);uniqueIndex;not null" json:"srn_code"`
	SrnTitleUZ      string `gorm:"column:srn_title_uz;type:varchar(255);not null" json:"srn_title_uz"`
	SrnTitleRU      string `gorm:"column:srn_title_ru;type:varchar(255)" json:"srn_title_ru"`
	SrnTitleEN      string `gorm:"column:srn_title_en;type:varchar(255)" json:"srn_title_en"`
	MainShnqCode    string `gorm:"column:main_shnq_code;type:varchar(20)" json:"main_shnq_code"`
	MainShnqTitleUZ string `gorm:"column:main_shnq_title_uz;type:varchar(255)" json:"main_shnq_title_uz"`
	MainShnqTitleRU string `gorm:"column:main_shnq_title_ru;type:varchar(255)" json:"main_shnq_title_ru"`
	MainShnqTitleEN string `gorm:"column:main_shnq_title_en;type:varchar(255)" json:"main_shnq_title_en"`
	AdditionalShnqs string `gorm:"column:additional_shnqs;type:text" json:"additional_shnqs"`
	File            string `gorm:"column:file;type:varchar(500);not null" json:"file"`
}

func (DbSmetaResursNorm) TableName() string {
	return "srn"
}

type SmetaResursNormView struct {
	ID              uint      `json:"id"`
	SrnCode         string    `json:"srn_code"`
	SrnTitle        string    `json:"srn_title"`
	MainShnqCode    string    `json:"main_shnq_code"`
	MainShnqTitle   string    `json:"main_shnq_title"`
	AdditionalShnqs string    `json:"additional_shnqs"`
	File            string    `json:"file"`
	CreatedAt       time.Time `json:"created_at"`
}

func MakeSmetaResursNormView(s *DbSmetaResursNorm, lang i18n.Lang) SmetaResursNormView {
	if s == nil {
		return SmetaResursNormView{}
	}
	return SmetaResursNormView{
		ID:              s.ID,
		SrnCode:         s.SrnCode,
		SrnTitle:        i18n.Pick(lang, s.SrnTitleUZ, s.SrnTitleRU, s.SrnTitleEN),
		MainShnqCode:    s.MainShnqCode,
		MainShnqTitle:   i18n.Pick(lang, s.MainShnqTitleUZ, s.MainShnqTitleRU, s.MainShnqTitleEN),
		AdditionalShnqs: s.AdditionalShnqs,
		File:            s.File,
		CreatedAt:       s.CreatedAt,
	}
}

// DbTechnicalRegulation is a technical regulation entry.
type DbTechnicalRegulation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code          string `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	TitleUZ       string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU       string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN       string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	DescriptionUZ string `gorm:"column:description_uz;type:text" json:"description_uz"`
	DescriptionRU string `gorm:"column:description_ru;type:text" json:"description_ru"`
	DescriptionEN string `gorm:"column:description_en;type:text" json:"description_en"`
	Link          string `gorm:"column:link;type:varchar(500)" json:"link"`
	File          string `gorm:"column:file;type:varchar(500)" json:"file"`
}

func (DbTechnicalRegulation) TableName() string {
	return "technical_regulations"
}

type TechnicalRegulationView struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	File        string    `json:"file"`
	CreatedAt   time.Time `json:"created_at"`
}

func MakeTechnicalRegulationView(tr *DbTechnicalRegulation, lang i18n.Lang) TechnicalRegulationView {
	if tr == nil {
		return TechnicalRegulationView{}
	}
	return TechnicalRegulationView{
		ID:          tr.ID,
		Code:        tr.Code,
		Title:       i18n.Pick(lang, tr.TitleUZ, tr.TitleRU, tr.TitleEN),
		Description: i18n.Pick(lang, tr.DescriptionUZ, tr.DescriptionRU, tr.DescriptionEN),
		Link:        tr.Link,
		File:        tr.File,
		CreatedAt:   tr.CreatedAt,
	}
}

// DbReference is a reference document entry.
type DbReference struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Number  string `gorm:"column:number;type:varchar(50);not null" json:"number"`
	TitleUZ string `gorm:"column:title_uz;type:varchar(255);not null" json:"title_uz"`
	TitleRU string `gorm:"column:title_ru;type:varchar(255)" json:"title_ru"`
	TitleEN string `gorm:"column:title_en;type:varchar(255)" json:"title_en"`
	Link    string `gorm:"column:link;type:varchar(500)" json:"link"`
}

func (DbReference) TableName() string {
	return "reference"
}

type ReferenceView struct {
	ID        uint      `json:"id"`
	Number    string    `json:"number"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

func MakeReferenceView(r *DbReference, lang i18n.Lang) ReferenceView {
	if r == nil {
		return ReferenceView{}
	}
	return ReferenceView{
		ID:        r.ID,
		Number:    r.Number,
		Title:     i18n.Pick(lang, r.TitleUZ, r.TitleRU, r.TitleEN),
		Link:      r.Link,
		CreatedAt: r.CreatedAt,
	}
}

type BuildingRegulationCreateRequest struct {
	Number  string `json:"number" binding:"required,max=50"`
	Code    string `json:"code" binding:"required"`
	TitleUZ string `json:"title_uz" binding:"required"`
	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
	Link    string `json:"link" binding:"omitempty,max=500"`
}

type BuildingRegulationUpdateRequest struct {
	Number  *string `json:"number,omitempty"`
	Code    *string `json:"code,omitempty"`
	TitleUZ *string `json:"title_uz,omitempty"`
	TitleRU *string `json:"title_ru,omitempty"`
	TitleEN *string `json:"title_en,omitempty"`
	Link    *string `json:"link,omitempty"`
}

// SmetaResursNormCreateForm is bound from the multipart create form. The
// norm document itself travels as a mandatory file part.
type SmetaResursNormCreateForm struct {
	SrnCode         string `form:"srn_code" binding:"required"`
	SrnTitleUZ      string `form:"srn_title_uz" binding:"required"`
	SrnTitleRU      string `form:"srn_title_ru"`
	SrnTitleEN      string `form:"srn_title_en"`
	MainShnqCode    string `form:"main_shnq_code"`
	MainShnqTitleUZ string `form:"main_shnq_title_uz"`
	MainShnqTitleRU string `form:"main_shnq_title_ru"`
	MainShnqTitleEN string `form:"main_shnq_title_en"`
	AdditionalShnqs string `form:"additional_shnqs"`
}

type SmetaResursNormUpdateForm struct {
	SrnCode         *string `form:"srn_code"`
	SrnTitleUZ      *string `form:"srn_title_uz"`
	SrnTitleRU      *string `form:"srn_title_ru"`
	SrnTitleEN      *string `form:"srn_title_en"`
	MainShnqCode    *string `form:"main_shnq_code"`
	MainShnqTitleUZ *string `form:"main_shnq_title_uz"`
	MainShnqTitleRU *string `form:"main_shnq_title_ru"`
	MainShnqTitleEN *string `form:"main_shnq_title_en"`
	AdditionalShnqs *string `form:"additional_shnqs"`
}

type TechnicalRegulationCreateForm struct {
	Code          string `form:"code" binding:"required"`
	TitleUZ       string `form:"title_uz" binding:"required"`
	TitleRU       string `form:"title_ru"`
	TitleEN       string `form:"title_en"`
	DescriptionUZ string `form:"description_uz"`
	DescriptionRU string `form:"description_ru"`
	DescriptionEN string `form:"description_en"`
	Link          string `form:"link" binding:"omitempty,max=500"`
}

type TechnicalRegulationUpdateForm struct {
	Code          *string `form:"code"`
	TitleUZ       *string `form:"title_uz"`
	TitleRU       *string `form:"title_ru"`
	TitleEN       *string `form:"title_en"`
	DescriptionUZ *string `form:"description_uz"`
	DescriptionRU *string `form:"description_ru"`
	DescriptionEN *string `form:"description_en"`
	Link          *string `form:"link"`
}

type ReferenceCreateRequest struct {
	Number  string `json:"number" binding:"required,max=50"`
	TitleUZ string `json:"title_uz" binding:"required"`
	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
	Link    string `json:"link" binding:"omitempty,max=500"`
}

type ReferenceUpdateRequest struct {
	Number  *string `json:"number,omitempty"`
	TitleUZ *string `json:"title_uz,omitempty"`
	TitleRU *string `json:"title_ru,omitempty"`
	TitleEN *string `json:"title_en,omitempty"`
	Link    *string `json:"link,omitempty"`
}
