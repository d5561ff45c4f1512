package controller

import (
	"errors"
	"strconv"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyController struct {
	StudyService *service.StudyService
}

func NewStudyController(studyService *service.StudyService) *StudyController {
	return &StudyController{
		StudyService: studyService,
	}
}

type LogSessionRequest struct {
	Duration int    `json:"duration" binding:"required"`
	Mode     string `json:"mode" binding:"required"`
}

// LogSession godoc
// @Summary Record a finished timer session
// @Description Focus sessions add their duration to the user's total study time
// @Tags study
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body LogSessionRequest true "session payload"
// @Success 201 {object} util.Response{data=model.StudySession}
// @Failure 400 {object} util.Response
// @Router /api/study/sessions [post]
func (c *StudyController) LogSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LogSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.StudyService.LogSession(claims.UserID, req.Duration, model.SessionMode(req.Mode))
	if err != nil {
		if errors.Is(err, util.ErrInvalidSession) {
			util.BadRequest(ctx, "duration must be positive and mode must be focus or break")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, session)
}

// GetHistory godoc
// @Summary Recent study sessions
// @Tags study
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "max sessions to return" default(20)
// @Success 200 {object} util.Response{data=service.StudyHistory}
// @Router /api/study/history [get]
func (c *StudyController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 20
	}

	history, err := c.StudyService.GetHistory(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// GetStats godoc
// @Summary Study time totals for today, this week and overall
// @Tags study
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudyStats}
// @Router /api/study/stats [get]
func (c *StudyController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.StudyService.GetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
