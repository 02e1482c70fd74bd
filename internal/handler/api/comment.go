package api

import (
	"net/http"
	"time"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidItemID = errs.New("invalid item id")

type CommentHandler struct {
	cmds commands.CommentCommands
	q    queries.CommentQueries
	loc  *time.Location
}

func NewCommentHandler(cmds commands.CommentCommands, q queries.CommentQueries, loc *time.Location) *CommentHandler {
	return &CommentHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Comment on an item
// @Description Only users with a finished, approved booking of the item may comment.
// @Tags comments
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Author id"
// @Param itemId path int true "Item id"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, middleware.ErrInvalidSharerUser)
		return
	}
	itemID, err := parseID(c.Param("itemId"), errInvalidItemID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(itemID), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.CommentID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCommentView(view, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
