package controller

import (
	"errors"
	"strconv"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
	}
}

type UpdateProgressRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateModuleStatus godoc
// @Summary Set the status of one course module
// @Description Records the transition, recomputes the streak and evaluates achievements
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   moduleId path int true "module id"
// @Param   body body UpdateProgressRequest true "new status"
// @Success 200 {object} util.Response{data=service.ProgressUpdateResult}
// @Failure 400 {object} util.Response
// @Router /api/progress/modules/{moduleId} [put]
func (c *ProgressController) UpdateModuleStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID, err := strconv.Atoi(ctx.Param("moduleId"))
	if err != nil {
		util.BadRequest(ctx, "moduleId must be an integer")
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	status := model.ProgressStatus(req.Status)
	if !model.ValidStatus(status) {
		util.BadRequest(ctx, "status must be one of not-started, in-progress, completed")
		return
	}

	result, err := c.ProgressService.UpdateModuleStatus(claims.UserID, moduleID, status)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetLedger godoc
// @Summary Current user's full progress ledger
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ModuleProgress}
// @Router /api/progress [get]
func (c *ProgressController) GetLedger(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ledger, err := c.ProgressService.GetLedger(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ledger)
}
