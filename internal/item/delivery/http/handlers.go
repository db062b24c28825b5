package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Validates the payload, checks code and name uniqueness and stores a new active item.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     createReq true "Item data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized Access"
// @Failure     403  {object} response.Resp "Forbidden Access"
// @Failure     422  {object} response.Resp "Unprocessable Entity"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.fail(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List items
// @Description Returns a page of items, newest first, archived included unless filtered.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default: 1)"
// @Param       pageSize   query int    false "Page size (default: 10, max: 100)"
// @Param       isArchived query bool   false "Filter by archive state"
// @Param       search     query string false "Case-insensitive match on code or name"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized Access"
// @Failure     403 {object} response.Resp "Forbidden Access"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.fail(c, "uc.List", err)
		return
	}

	response.OKWithPagination(c, h.newListResp(output), output.Pagination)
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized Access"
// @Failure     403 {object} response.Resp "Forbidden Access"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Applies a partial update. An empty body is validated as a full payload.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized Access"
// @Failure     403 {object} response.Resp "Forbidden Access"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Unprocessable Entity"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, sc, req.toInput()); err != nil {
		h.fail(c, "uc.Update", err)
		return
	}

	response.NoContent(c)
}

// Archive godoc
// @Summary     Archive an item
// @Description Marks an item as archived. Archiving an archived item is a no-op.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     204
// @Failure     401 {object} response.Resp "Unauthorized Access"
// @Failure     403 {object} response.Resp "Forbidden Access"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id}/archive [PATCH]
func (h *handler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Archive(ctx, sc, c.Param("id")); err != nil {
		h.fail(c, "uc.Archive", err)
		return
	}

	response.NoContent(c)
}

// Restore godoc
// @Summary     Restore an item
// @Description Returns an archived item to the active state. Restoring an active item is a no-op.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     204
// @Failure     401 {object} response.Resp "Unauthorized Access"
// @Failure     403 {object} response.Resp "Forbidden Access"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id}/restore [PATCH]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Restore(ctx, sc, c.Param("id")); err != nil {
		h.fail(c, "uc.Restore", err)
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID, archived or not.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     204
// @Failure     401 {object} response.Resp "Unauthorized Access"
// @Failure     403 {object} response.Resp "Forbidden Access"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.fail(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}
