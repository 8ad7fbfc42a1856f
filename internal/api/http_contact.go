package api

import (
	"context"
	"time"

	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

// CreateContact accepts an anonymous contact-form submission. The Telegram
// notification runs in the background so a slow bot API never delays the
// response.
func (h *HTTPHandler) CreateContact(c *gin.Context) {
	var req entity.ContactCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	file, ok := h.saveUpload(c, "file", "contact")
	if !ok {
		return
	}

	row := entity.DbContact{
		Fio:        req.Fio,
		Email:      req.Email,
		Phone:      req.Phone,
		CategoryUZ: req.CategoryUZ,
		CategoryRU: req.CategoryRU,
		CategoryEN: req.CategoryEN,
		MessageUZ:  req.MessageUZ,
		MessageRU:  req.MessageRU,
		MessageEN:  req.MessageEN,
		File:       file,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateContact(ctx, &row); err != nil {
		h.cleanupStoredFiles(c, []string{file})
		FromError(c, err)
		return
	}

	if h.notifier != nil {
		saved := row
		go func() {
			notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer notifyCancel()
			h.notifier.NotifyContact(notifyCtx, &saved)
		}()
	}

	c.JSON(201, gin.H{"id": row.ID, "message": "murojaat qabul qilindi"})
}

func (h *HTTPHandler) ListContacts(c *gin.Context) {
	listLocalized(h, c, h.repo.ListContacts, entity.MakeContactView)
}

func (h *HTTPHandler) GetContact(c *gin.Context) {
	getLocalized(h, c, h.repo.GetContact, entity.MakeContactView)
}

func (h *HTTPHandler) DeleteContact(c *gin.Context) {
	deleteEntity(h, c, h.repo.GetContact, h.repo.DeleteContact, func(ct *entity.DbContact) []string {
		return []string{ct.File}
	})
}
