package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindbet-bot/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a chat message into an intent
// @Description Runs the keyword matcher and, on a miss, the LLM classifier. Always answers with a record.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body     resolveReq true "Chat message"
// @Success     200  {object} response.ServiceResp{data=resolveResp}
// @Failure     400  {object} response.ServiceResp "Bad Request"
// @Failure     429  {object} response.ServiceResp "Too Many Requests"
// @Failure     500  {object} response.ServiceResp "Internal Server Error"
// @Router      /api/v1/ai/intent [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Failure(c, http.StatusBadRequest, err)
		return
	}

	record := h.uc.Resolve(ctx, req.Message)
	h.l.Debug(ctx, "internal.intent.delivery.http.Resolve", "command", record.CommandName(), "confidence", record.Confidence)

	response.Success(c, h.newResolveResp(record))
}

// HotEvents godoc
// @Summary     Today's hot topics
// @Description Returns the LLM hot-topic analysis with suggested prediction-market questions.
// @Tags        AI
// @Produce     json
// @Success     200 {object} response.ServiceResp{data=hotEventsResp}
// @Failure     429 {object} response.ServiceResp "Too Many Requests"
// @Failure     500 {object} response.ServiceResp "Internal Server Error"
// @Router      /api/v1/ai/hot-events [GET]
func (h *handler) HotEvents(c *gin.Context) {
	ctx := c.Request.Context()

	if h.hot == nil {
		response.InternalError(c, errHotDisabled)
		return
	}

	report, err := h.hot.Analyze(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.intent.delivery.http.HotEvents: hot.Analyze: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Success(c, h.newHotEventsResp(report))
}
