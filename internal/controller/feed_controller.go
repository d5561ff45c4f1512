package controller

import (
	"io"

	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// FeedController streams live progress events over SSE.
type FeedController struct {
	FeedService *service.FeedService
}

func NewFeedController(feedService *service.FeedService) *FeedController {
	return &FeedController{
		FeedService: feedService,
	}
}

// StreamUserFeed godoc
// @Summary Live event stream for the current user
// @Description Server-sent events for the user's own progress, sessions and unlocks
// @Tags feed
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Success 200 {string} string "event stream"
// @Router /api/feed [get]
func (c *FeedController) StreamUserFeed(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	events, teardown := c.FeedService.SubscribeUser(claims.UserID)
	defer teardown()

	c.stream(ctx, events)
}

// StreamRosterFeed godoc
// @Summary Live event stream across the whole roster
// @Description Server-sent events whenever any learner's progress changes
// @Tags feed
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Success 200 {string} string "event stream"
// @Router /api/feed/roster [get]
func (c *FeedController) StreamRosterFeed(ctx *gin.Context) {
	events, teardown := c.FeedService.SubscribeRoster()
	defer teardown()

	c.stream(ctx, events)
}

func (c *FeedController) stream(ctx *gin.Context, events <-chan service.FeedEvent) {
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	clientGone := ctx.Request.Context().Done()
	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			ctx.SSEvent(event.Type, event)
			return true
		}
	})
}
