package api

import (
	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListNews(c *gin.Context) {
	listLocalized(h, c, h.repo.ListNews, entity.MakeNewsView)
}

func (h *HTTPHandler) GetNews(c *gin.Context) {
	getLocalized(h, c, h.repo.GetNews, entity.MakeNewsView)
}

func (h *HTTPHandler) CreateNews(c *gin.Context) {
	var req entity.NewsCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	publishedAt, err := parseDateField(req.PublishedAt)
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "published_at must be RFC 3339 or yyyy-mm-dd")
		return
	}

	image, ok := h.saveUpload(c, "image", "news")
	if !ok {
		return
	}

	row := entity.DbNews{
		TitleUZ:     req.TitleUZ,
		TitleRU:     req.TitleRU,
		TitleEN:     req.TitleEN,
		ContentUZ:   req.ContentUZ,
		ContentRU:   req.ContentRU,
		ContentEN:   req.ContentEN,
		Image:       image,
		PublishedAt: publishedAt,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateNews(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{image})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateNews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.NewsUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetNews(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.TitleUZ != nil {
		updates["title_uz"] = *req.TitleUZ
	}
	if req.TitleRU != nil {
		updates["title_ru"] = *req.TitleRU
	}
	if req.TitleEN != nil {
		updates["title_en"] = *req.TitleEN
	}
	if req.ContentUZ != nil {
		updates["content_uz"] = *req.ContentUZ
	}
	if req.ContentRU != nil {
		updates["content_ru"] = *req.ContentRU
	}
	if req.ContentEN != nil {
		updates["content_en"] = *req.ContentEN
	}
	if req.PublishedAt != nil {
		publishedAt, err := parseDateField(*req.PublishedAt)
		if err != nil {
			BadRequest(c, ErrCodeInvalidRequest, "published_at must be RFC 3339 or yyyy-mm-dd")
			return
		}
		updates["published_at"] = publishedAt
	}

	image, ok := h.saveUpload(c, "image", "news")
	if !ok {
		return
	}
	if image != "" {
		updates["image"] = image
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateNews(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{image})
			FromError(c, err)
			return
		}
		if image != "" {
			h.cleanupStoredFiles(c, []string{current.Image})
		}
	}

	updated, err := h.repo.GetNews(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteNews(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetNews, h.repo.DeleteNews, func(n *entity.DbNews) []string {
		return []string{n.Image}
	})
}

func (h *HTTPHandler) ListAntiCorruption(c *gin.Context) {
	listLocalized(h, c, h.repo.ListAntiCorruption, entity.MakeAntiCorruptionView)
}

func (h *HTTPHandler) GetAntiCorruption(c *gin.Context) {
	getLocalized(h, c, h.repo.GetAntiCorruption, entity.MakeAntiCorruptionView)
}

func (h *HTTPHandler) CreateAntiCorruption(c *gin.Context) {
	var req entity.AntiCorruptionCreateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	file, ok := h.saveUpload(c, "file", "anticorruption")
	if !ok {
		return
	}

	row := entity.DbAntiCorruption{
		TitleUZ:   req.TitleUZ,
		TitleRU:   req.TitleRU,
		TitleEN:   req.TitleEN,
		ContentUZ: req.ContentUZ,
		ContentRU: req.ContentRU,
		ContentEN: req.ContentEN,
		File:      file,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateAntiCorruption(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{file})
		FromError(c, err)
		return
	}
	c.JSON(201, row)
}

func (h *HTTPHandler) UpdateAntiCorruption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.AntiCorruptionUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	current, err := h.repo.GetAntiCorruption(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.TitleUZ != nil {
		updates["title_uz"] = *req.TitleUZ
	}
	if req.TitleRU != nil {
		updates["title_ru"] = *req.TitleRU
	}
	if req.TitleEN != nil {
		updates["title_en"] = *req.TitleEN
	}
	if req.ContentUZ != nil {
		updates["content_uz"] = *req.ContentUZ
	}
	if req.ContentRU != nil {
		updates["content_ru"] = *req.ContentRU
	}
	if req.ContentEN != nil {
		updates["content_en"] = *req.ContentEN
	}

	file, ok := h.saveUpload(c, "file", "anticorruption")
	if !ok {
		return
	}
	if file != "" {
		updates["file"] = file
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateAntiCorruption(ctx, id, updates); err != nil {
			h.cleanupStoredFiles(c, []string{file})
			FromError(c, err)
			return
		}
		if file != "" {
			h.cleanupStoredFiles(c, []string{current.File})
		}
	}

	updated, err := h.repo.GetAntiCorruption(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *HTTPHandler) DeleteAntiCorruption(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetAntiCorruption, h.repo.DeleteAntiCorruption, func(a *entity.DbAntiCorruption) []string {
		return []string{a.File}
	})
}
