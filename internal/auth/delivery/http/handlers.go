package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-management/pkg/response"
)

// SignIn godoc
// @Summary     Sign in
// @Description Exchanges a username and password for a bearer access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body     signInReq true "Credentials"
// @Success     200  {object} signInResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized Access"
// @Failure     422  {object} response.Resp "Unprocessable Entity"
// @Router      /v1/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newSignInResp(output))
}
