package api

import (
	"strconv"

	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

// About the institute.

func (h *HTTPHandler) ListAbout(c *gin.Context) {
	listLocalized(h, c, h.repo.ListAbout, entity.MakeAboutView)
}

func (h *HTTPHandler) GetAbout(c *gin.Context) {
	getLocalized(h, c, h.repo.GetAbout, entity.MakeAboutView)
}

func (h *HTTPHandler) CreateAbout(c *gin.Context) {
	var req entity.AboutCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	pdf, ok := h.saveUpload(c, "pdf", "about")
	if !ok {
		return
	}

	row := entity.DbAbout{
		ContentUZ: req.ContentUZ,
		ContentRU: req.ContentRU,
		ContentEN: req.ContentEN,
		PdfURL:    pdf,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateAbout(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{pdf})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateAbout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.AboutUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetAbout(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "content_uz", req.ContentUZ)
	applyString(updates, "content_ru", req.ContentRU)
	applyString(updates, "content_en", req.ContentEN)

	pdf, ok := h.saveUpload(c, "pdf", "about")
	if !ok {
		return
	}
	if pdf != "" {
		updates["pdf_url"] = pdf
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateAbout(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{pdf})
			FromError(c, err)
			return
		}
		if pdf != "" {
			h.cleanupStoredFiles(c, []string{current.PdfURL})
		}
	}

	updated, err := h.repo.GetAbout(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteAbout(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetAbout, h.repo.DeleteAbout, func(a *entity.DbAbout) []string {
		return []string{a.PdfURL}
	})
}

// Leadership.

func (h *HTTPHandler) ListManagement(c *gin.Context) {
	listLocalized(h, c, h.repo.ListManagement, entity.MakeManagementView)
}

func (h *HTTPHandler) GetManagement(c *gin.Context) {
	getLocalized(h, c, h.repo.GetManagement, entity.MakeManagementView)
}

func (h *HTTPHandler) CreateManagement(c *gin.Context) {
	var req entity.ManagementCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	image, ok := h.saveUpload(c, "profile_image", "management")
	if !ok {
		return
	}

	row := entity.DbManagement{
		FullName:         req.FullName,
		PositionUZ:       req.PositionUZ,
		PositionRU:       req.PositionRU,
		PositionEN:       req.PositionEN,
		ProfileImage:     image,
		ReceptionDays:    req.ReceptionDays,
		Phone:            req.Phone,
		Email:            req.Email,
		SpecializationUZ: req.SpecializationUZ,
		SpecializationRU: req.SpecializationRU,
		SpecializationEN: req.SpecializationEN,
		OrderIndex:       req.OrderIndex,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateManagement(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{image})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateManagement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.ManagementUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetManagement(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "full_name", req.FullName)
	applyString(updates, "position_uz", req.PositionUZ)
	applyString(updates, "position_ru", req.PositionRU)
	applyString(updates, "position_en", req.PositionEN)
	applyString(updates, "reception_days", req.ReceptionDays)
	applyString(updates, "phone", req.Phone)
	applyString(updates, "email", req.Email)
	applyString(updates, "specialization_uz", req.SpecializationUZ)
	applyString(updates, "specialization_ru", req.SpecializationRU)
	applyString(updates, "specialization_en", req.SpecializationEN)
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}

	image, ok := h.saveUpload(c, "profile_image", "management")
	if !ok {
		return
	}
	if image != "" {
		updates["profile_image"] = image
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateManagement(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{image})
			FromError(c, err)
			return
		}
		if image != "" {
			h.cleanupStoredFiles(c, []string{current.ProfileImage})
		}
	}

	updated, err := h.repo.GetManagement(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteManagement(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetManagement, h.repo.DeleteManagement, func(m *entity.DbManagement) []string {
		return []string{m.ProfileImage}
	})
}

// Organizational chart.

func (h *HTTPHandler) ListStructures(c *gin.Context) {
	listLocalized(h, c, h.repo.ListStructures, entity.MakeStructureView)
}

func (h *HTTPHandler) GetStructure(c *gin.Context) {
	getLocalized(h, c, h.repo.GetStructure, entity.MakeStructureView)
}

func (h *HTTPHandler) CreateStructure(c *gin.Context) {
	var req entity.StructureCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	pdf, ok := h.saveUpload(c, "pdf", "structure")
	if !ok {
		return
	}

	row := entity.DbStructure{
		TitleUZ: req.TitleUZ,
		TitleRU: req.TitleRU,
		TitleEN: req.TitleEN,
		PdfURL:  pdf,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateStructure(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{pdf})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateStructure(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.StructureUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetStructure(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)

	pdf, ok := h.saveUpload(c, "pdf", "structure")
	if !ok {
		return
	}
	if pdf != "" {
		updates["pdf_url"] = pdf
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateStructure(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{pdf})
			FromError(c, err)
			return
		}
		if pdf != "" {
			h.cleanupStoredFiles(c, []string{current.PdfURL})
		}
	}

	updated, err := h.repo.GetStructure(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteStructure(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetStructure, h.repo.DeleteStructure, func(s *entity.DbStructure) []string {
		return []string{s.PdfURL}
	})
}

// Structural divisions.

func (h *HTTPHandler) ListStructuralDivisions(c *gin.Context) {
	listLocalized(h, c, h.repo.ListStructuralDivisions, entity.MakeStructuralDivisionView)
}

func (h *HTTPHandler) GetStructuralDivision(c *gin.Context) {
	getLocalized(h, c, h.repo.GetStructuralDivision, entity.MakeStructuralDivisionView)
}

func (h *HTTPHandler) CreateStructuralDivision(c *gin.Context) {
	var req entity.StructuralDivisionCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	image, ok := h.saveUpload(c, "profile_image", "divisions")
	if !ok {
		return
	}

	row := entity.DbStructuralDivision{
		TitleUZ:      req.TitleUZ,
		TitleRU:      req.TitleRU,
		TitleEN:      req.TitleEN,
		HeadFullName: req.HeadFullName,
		Phone:        req.Phone,
		Email:        req.Email,
		ProfileImage: image,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateStructuralDivision(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{image})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateStructuralDivision(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.StructuralDivisionUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetStructuralDivision(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "head_full_name", req.HeadFullName)
	applyString(updates, "phone", req.Phone)
	applyString(updates, "email", req.Email)

	image, ok := h.saveUpload(c, "profile_image", "divisions")
	if !ok {
		return
	}
	if image != "" {
		updates["profile_image"] = image
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateStructuralDivision(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{image})
			FromError(c, err)
			return
		}
		if image != "" {
			h.cleanupStoredFiles(c, []string{current.ProfileImage})
		}
	}

	updated, err := h.repo.GetStructuralDivision(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteStructuralDivision(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetStructuralDivision, h.repo.DeleteStructuralDivision, func(d *entity.DbStructuralDivision) []string {
		return []string{d.ProfileImage}
	})
}

// Vacancies. The public listing can be narrowed to active positions with
// ?active=true.

func (h *HTTPHandler) ListVacancies(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, ErrCodeInvalidRequest, "active must be a boolean")
			return
		}
		activeOnly = parsed
	}
	if activeOnly {
		listLocalized(h, c, h.repo.ListActiveVacancies, entity.MakeVacancyView)
		return
	}
	listLocalized(h, c, h.repo.ListVacancies, entity.MakeVacancyView)
}

func (h *HTTPHandler) GetVacancy(c *gin.Context) {
	getLocalized(h, c, h.repo.GetVacancy, entity.MakeVacancyView)
}

func (h *HTTPHandler) CreateVacancy(c *gin.Context) {
	var req entity.VacancyCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	deadline, err := parseDateField(req.Deadline)
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "deadline must be RFC 3339 or yyyy-mm-dd")
		return
	}

	attachment, ok := h.saveUpload(c, "attachment", "vacancies")
	if !ok {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	row := entity.DbVacancy{
		TitleUZ:        req.TitleUZ,
		TitleRU:        req.TitleRU,
		TitleEN:        req.TitleEN,
		DescriptionUZ:  req.DescriptionUZ,
		DescriptionRU:  req.DescriptionRU,
		DescriptionEN:  req.DescriptionEN,
		RequirementsUZ: req.RequirementsUZ,
		RequirementsRU: req.RequirementsRU,
		RequirementsEN: req.RequirementsEN,
		Deadline:       deadline,
		ContactEmail:   req.ContactEmail,
		Attachment:     attachment,
		IsActive:       isActive,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateVacancy(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{attachment})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateVacancy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.VacancyUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetVacancy(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "description_uz", req.DescriptionUZ)
	applyString(updates, "description_ru", req.DescriptionRU)
	applyString(updates, "description_en", req.DescriptionEN)
	applyString(updates, "requirements_uz", req.RequirementsUZ)
	applyString(updates, "requirements_ru", req.RequirementsRU)
	applyString(updates, "requirements_en", req.RequirementsEN)
	applyString(updates, "contact_email", req.ContactEmail)
	if req.Deadline != nil {
		deadline, err := parseDateField(*req.Deadline)
		if err != nil {
			BadRequest(c, ErrCodeInvalidRequest, "deadline must be RFC 3339 or yyyy-mm-dd")
			return
		}
		updates["deadline"] = deadline
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	attachment, ok := h.saveUpload(c, "attachment", "vacancies")
	if !ok {
		return
	}
	if attachment != "" {
		updates["attachment"] = attachment
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateVacancy(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{attachment})
			FromError(c, err)
			return
		}
		if attachment != "" {
			h.cleanupStoredFiles(c, []string{current.Attachment})
		}
	}

	updated, err := h.repo.GetVacancy(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteVacancy(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetVacancy, h.repo.DeleteVacancy, func(v *entity.DbVacancy) []string {
		return []string{v.Attachment}
	})
}
