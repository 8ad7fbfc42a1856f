package api

import (
	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListManagementSystems(c *gin.Context) {
	listLocalized(h, c, h.repo.ListManagementSystems, entity.MakeManagementSystemView)
}

func (h *HTTPHandler) GetManagementSystem(c *gin.Context) {
	getLocalized(h, c, h.repo.GetManagementSystem, entity.MakeManagementSystemView)
}

func (h *HTTPHandler) CreateManagementSystem(c *gin.Context) {
	var req entity.ManagementSystemCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	pdf, ok := h.saveUpload(c, "pdf", "managementsystems")
	if !ok {
		return
	}

	row := entity.DbManagementSystem{
		TitleUZ:       req.TitleUZ,
		TitleRU:       req.TitleRU,
		TitleEN:       req.TitleEN,
		DescriptionUZ: req.DescriptionUZ,
		DescriptionRU: req.DescriptionRU,
		DescriptionEN: req.DescriptionEN,
		Pdf:           pdf,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateManagementSystem(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{pdf})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateManagementSystem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.ManagementSystemUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetManagementSystem(ctx, id)
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

	pdf, ok := h.saveUpload(c, "pdf", "managementsystems")
	if !ok {
		return
	}
	if pdf != "" {
		updates["pdf"] = pdf
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateManagementSystem(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{pdf})
			FromError(c, err)
			return
		}
		if pdf != "" {
			h.cleanupStoredFiles(c, []string{current.Pdf})
		}
	}

	updated, err := h.repo.GetManagementSystem(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteManagementSystem(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetManagementSystem, h.repo.DeleteManagementSystem, func(m *entity.DbManagementSystem) []string {
		return []string{m.Pdf}
	})
}
