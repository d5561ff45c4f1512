package controller

import (
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		LeaderboardService: leaderboardService,
	}
}

// GetLeaderboard godoc
// @Summary Roster ranked by course completion
// @Tags leaderboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.LeaderboardService.GetLeaderboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// GetWeeklyActivity godoc
// @Summary Modules completed by each learner this calendar week
// @Tags leaderboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.WeeklyActivityEntry}
// @Router /api/leaderboard/weekly [get]
func (c *LeaderboardController) GetWeeklyActivity(ctx *gin.Context) {
	entries, err := c.LeaderboardService.GetWeeklyActivity()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
