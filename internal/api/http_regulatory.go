package api

import (
	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

// SHNQ: urban construction norms.

func (h *HTTPHandler) ListShnq(c *gin.Context) {
	listLocalized(h, c, h.repo.ListShnq, entity.MakeShnqView)
}

func (h *HTTPHandler) GetShnq(c *gin.Context) {
	getLocalized(h, c, h.repo.GetShnq, entity.MakeShnqView)
}

func (h *HTTPHandler) CreateShnq(c *gin.Context) {
	var req entity.ShnqCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateDocumentCode(req.Code); err != nil {
		FromError(c, err)
		return
	}
	if err := entity.ValidateLocalizedTitle(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	row := entity.DbShnq{
		Subsystem: req.Subsystem,
		Group:     req.Group,
		Code:      req.Code,
		TitleUZ:   req.TitleUZ,
		TitleRU:   req.TitleRU,
		TitleEN:   req.TitleEN,
		Link:      req.Link,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateShnq(ctx, &row); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateShnq(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.ShnqUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Code != nil {
		if err := entity.ValidateDocumentCode(*req.Code); err != nil {
			FromError(c, err)
			return
		}
	}
	if err := entity.ValidateTitleUpdate(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "subsystem", req.Subsystem)
	applyString(updates, "doc_group", req.Group)
	applyString(updates, "code", req.Code)
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "link", req.Link)

	ctx, cancel := requestContext(c)
	defer cancel()

	if len(updates) > 0 {
		if err := h.repo.UpdateShnq(ctx, id, updates); err != nil {
			FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetShnq(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteShnq(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetShnq, h.repo.DeleteShnq, nil)
}

// State standards.

func (h *HTTPHandler) ListStandards(c *gin.Context) {
	listLocalized(h, c, h.repo.ListStandards, entity.MakeStandardView)
}

func (h *HTTPHandler) GetStandard(c *gin.Context) {
	getLocalized(h, c, h.repo.GetStandard, entity.MakeStandardView)
}

func (h *HTTPHandler) CreateStandard(c *gin.Context) {
	var req entity.StandardCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateDocumentCode(req.Code); err != nil {
		FromError(c, err)
		return
	}
	if err := entity.ValidateLocalizedTitle(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}
	if err := entity.ValidateRequiredDescription(req.DescriptionUZ); err != nil {
		FromError(c, err)
		return
	}

	row := entity.DbStandard{
		Code:          req.Code,
		TitleUZ:       req.TitleUZ,
		TitleRU:       req.TitleRU,
		TitleEN:       req.TitleEN,
		DescriptionUZ: req.DescriptionUZ,
		DescriptionRU: req.DescriptionRU,
		DescriptionEN: req.DescriptionEN,
		Link:          req.Link,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateStandard(ctx, &row); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateStandard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.StandardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Code != nil {
		if err := entity.ValidateDocumentCode(*req.Code); err != nil {
			FromError(c, err)
			return
		}
	}
	if err := entity.ValidateTitleUpdate(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}
	if req.DescriptionUZ != nil {
		if err := entity.ValidateRequiredDescription(*req.DescriptionUZ); err != nil {
			FromError(c, err)
			return
		}
	}

	updates := map[string]interface{}{}
	applyString(updates, "code", req.Code)
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "description_uz", req.DescriptionUZ)
	applyString(updates, "description_ru", req.DescriptionRU)
	applyString(updates, "description_en", req.DescriptionEN)
	applyString(updates, "link", req.Link)

	ctx, cancel := requestContext(c)
	defer cancel()

	if len(updates) > 0 {
		if err := h.repo.UpdateStandard(ctx, id, updates); err != nil {
			FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetStandard(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteStandard(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetStandard, h.repo.DeleteStandard, nil)
}

// Building regulations.

func (h *HTTPHandler) ListBuildingRegulations(c *gin.Context) {
	listLocalized(h, c, h.repo.ListBuildingRegulations, entity.MakeBuildingRegulationView)
}

func (h *HTTPHandler) GetBuildingRegulation(c *gin.Context) {
	getLocalized(h, c, h.repo.GetBuildingRegulation, entity.MakeBuildingRegulationView)
}

func (h *HTTPHandler) CreateBuildingRegulation(c *gin.Context) {
	var req entity.BuildingRegulationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateDocumentCode(req.Code); err != nil {
		FromError(c, err)
		return
	}
	if err := entity.ValidateLocalizedTitle(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	row := entity.DbBuildingRegulation{
		Number:  req.Number,
		Code:    req.Code,
		TitleUZ: req.TitleUZ,
		TitleRU: req.TitleRU,
		TitleEN: req.TitleEN,
		Link:    req.Link,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateBuildingRegulation(ctx, &row); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateBuildingRegulation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.BuildingRegulationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Code != nil {
		if err := entity.ValidateDocumentCode(*req.Code); err != nil {
			FromError(c, err)
			return
		}
	}
	if err := entity.ValidateTitleUpdate(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "number", req.Number)
	applyString(updates, "code", req.Code)
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "link", req.Link)

	ctx, cancel := requestContext(c)
	defer cancel()

	if len(updates) > 0 {
		if err := h.repo.UpdateBuildingRegulation(ctx, id, updates); err != nil {
			FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetBuildingRegulation(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteBuildingRegulation(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetBuildingRegulation, h.repo.DeleteBuildingRegulation, nil)
}

// Estimate/resource norms (SRN). The norm document is mandatory.

func (h *HTTPHandler) ListSmetaResursNorms(c *gin.Context) {
	listLocalized(h, c, h.repo.ListSmetaResursNorms, entity.MakeSmetaResursNormView)
}

func (h *HTTPHandler) GetSmetaResursNorm(c *gin.Context) {
	getLocalized(h, c, h.repo.GetSmetaResursNorm, entity.MakeSmetaResursNormView)
}

func (h *HTTPHandler) CreateSmetaResursNorm(c *gin.Context) {
	var req entity.SmetaResursNormCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateDocumentCode(req.SrnCode); err != nil {
		FromError(c, err)
		return
	}
	if err := entity.ValidateLocalizedTitle(req.SrnTitleUZ, req.SrnTitleRU, req.SrnTitleEN); err != nil {
		FromError(c, err)
		return
	}

	file, ok := h.saveUpload(c, "file", "srn")
	if !ok {
		return
	}
	if file == "" {
		Unprocessable(c, ErrCodeValidation, "file is required")
		return
	}

	row := entity.DbSmetaResursNorm{
		SrnCode:         req.SrnCode,
		SrnTitleUZ:      req.SrnTitleUZ,
		SrnTitleRU:      req.SrnTitleRU,
		SrnTitleEN:      req.SrnTitleEN,
		MainShnqCode:    req.MainShnqCode,
		MainShnqTitleUZ: req.MainShnqTitleUZ,
		MainShnqTitleRU: req.MainShnqTitleRU,
		MainShnqTitleEN: req.MainShnqTitleEN,
		AdditionalShnqs: req.AdditionalShnqs,
		File:            file,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateSmetaResursNorm(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{file})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateSmetaResursNorm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.SmetaResursNormUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.SrnCode != nil {
		if err := entity.ValidateDocumentCode(*req.SrnCode); err != nil {
			FromError(c, err)
			return
		}
	}
	if err := entity.ValidateTitleUpdate(req.SrnTitleUZ, req.SrnTitleRU, req.SrnTitleEN); err != nil {
		FromError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetSmetaResursNorm(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "srn_code", req.SrnCode)
	applyString(updates, "srn_title_uz", req.SrnTitleUZ)
	applyString(updates, "srn_title_ru", req.SrnTitleRU)
	applyString(updates, "srn_title_en", req.SrnTitleEN)
	applyString(updates, "main_shnq_code", req.MainShnqCode)
	applyString(updates, "main_shnq_title_uz", req.MainShnqTitleUZ)
	applyString(updates, "main_shnq_title_ru", req.MainShnqTitleRU)
	applyString(updates, "main_shnq_title_en", req.MainShnqTitleEN)
	applyString(updates, "additional_shnqs", req.AdditionalShnqs)

	file, ok := h.saveUpload(c, "file", "srn")
	if !ok {
		return
	}
	if file != "" {
		updates["file"] = file
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateSmetaResursNorm(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{file})
			FromError(c, err)
			return
		}
		if file != "" {
			h.cleanupStoredFiles(c, []string{current.File})
		}
	}

	updated, err := h.repo.GetSmetaResursNorm(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteSmetaResursNorm(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetSmetaResursNorm, h.repo.DeleteSmetaResursNorm, func(s *entity.DbSmetaResursNorm) []string {
		return []string{s.File}
	})
}

// Technical regulations.

func (h *HTTPHandler) ListTechnicalRegulations(c *gin.Context) {
	listLocalized(h, c, h.repo.ListTechnicalRegulations, entity.MakeTechnicalRegulationView)
}

func (h *HTTPHandler) GetTechnicalRegulation(c *gin.Context) {
	getLocalized(h, c, h.repo.GetTechnicalRegulation, entity.MakeTechnicalRegulationView)
}

func (h *HTTPHandler) CreateTechnicalRegulation(c *gin.Context) {
	var req entity.TechnicalRegulationCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateDocumentCode(req.Code); err != nil {
		FromError(c, err)
		return
	}
	if err := entity.ValidateLocalizedTitle(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	file, ok := h.saveUpload(c, "file", "technicalregulations")
	if !ok {
		return
	}

	row := entity.DbTechnicalRegulation{
		Code:          req.Code,
		TitleUZ:       req.TitleUZ,
		TitleRU:       req.TitleRU,
		TitleEN:       req.TitleEN,
		DescriptionUZ: req.DescriptionUZ,
		DescriptionRU: req.DescriptionRU,
		DescriptionEN: req.DescriptionEN,
		Link:          req.Link,
		File:          file,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateTechnicalRegulation(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{file})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateTechnicalRegulation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.TechnicalRegulationUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Code != nil {
		if err := entity.ValidateDocumentCode(*req.Code); err != nil {
			FromError(c, err)
			return
		}
	}
	if err := entity.ValidateTitleUpdate(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetTechnicalRegulation(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "code", req.Code)
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "description_uz", req.DescriptionUZ)
	applyString(updates, "description_ru", req.DescriptionRU)
	applyString(updates, "description_en", req.DescriptionEN)
	applyString(updates, "link", req.Link)

	file, ok := h.saveUpload(c, "file", "technicalregulations")
	if !ok {
		return
	}
	if file != "" {
		updates["file"] = file
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateTechnicalRegulation(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{file})
			FromError(c, err)
			return
		}
		if file != "" {
			h.cleanupStoredFiles(c, []string{current.File})
		}
	}

	updated, err := h.repo.GetTechnicalRegulation(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteTechnicalRegulation(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetTechnicalRegulation, h.repo.DeleteTechnicalRegulation, func(tr *entity.DbTechnicalRegulation) []string {
		return []string{tr.File}
	})
}

// Reference documents.

func (h *HTTPHandler) ListReferences(c *gin.Context) {
	listLocalized(h, c, h.repo.ListReferences, entity.MakeReferenceView)
}

func (h *HTTPHandler) GetReference(c *gin.Context) {
	getLocalized(h, c, h.repo.GetReference, entity.MakeReferenceView)
}

func (h *HTTPHandler) CreateReference(c *gin.Context) {
	var req entity.ReferenceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateLocalizedTitle(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	row := entity.DbReference{
		Number:  req.Number,
		TitleUZ: req.TitleUZ,
		TitleRU: req.TitleRU,
		TitleEN: req.TitleEN,
		Link:    req.Link,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateReference(ctx, &row); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateReference(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.ReferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidateTitleUpdate(req.TitleUZ, req.TitleRU, req.TitleEN); err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	applyString(updates, "number", req.Number)
	applyString(updates, "title_uz", req.TitleUZ)
	applyString(updates, "title_ru", req.TitleRU)
	applyString(updates, "title_en", req.TitleEN)
	applyString(updates, "link", req.Link)

	ctx, cancel := requestContext(c)
	defer cancel()

	if len(updates) > 0 {
		if err := h.repo.UpdateReference(ctx, id, updates); err != nil {
			FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetReference(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteReference(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetReference, h.repo.DeleteReference, nil)
}
