package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"items-fixture-api/pkg/response"
	"items-fixture-api/pkg/validation"
)

// List godoc
// @Summary     List all items
// @Description Validates the filter body and returns the full catalog. The
// @Description filter content is accepted but not applied.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body filterReq true "Item filter"
// @Success     200 {array}  itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFilterReq(c)
	if err != nil {
		msg, fields := validation.Translate(err)
		response.Error(c, errors.New(msg), fields)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.Raw(c, h.newListResp(output))
}

// Search godoc
// @Summary     Search items by id
// @Description Returns the items whose id appears in item_ids, in catalog
// @Description order. An empty filter matches nothing.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body filterReq true "Item filter"
// @Success     200 {array}  itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFilterReq(c)
	if err != nil {
		msg, fields := validation.Translate(err)
		response.Error(c, errors.New(msg), fields)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.respondError(c, err)
		return
	}

	response.Raw(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one item
// @Description Returns a single item by its integer catalog key.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path int true "Item key"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		msg, fields := validation.Translate(err)
		response.Error(c, errors.New(msg), fields)
		return
	}

	output, err := h.uc.Detail(ctx, req.Key)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.Raw(c, h.newDetailResp(output))
}
