package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingID = errs.New("invalid booking id")
	errInvalidApproved  = errs.New("approved must be true or false")
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	clock clock.Clock
	loc   *time.Location
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock, loc *time.Location) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clock: clk, loc: loc}
}

// @Summary Create booking
// @Description Request an item for a time period. The booking starts in WAITING.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker id"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, middleware.ErrInvalidSharerUser)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(h.loc, h.clock.Now())
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrBadRequestParam))
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, result.BookingID, userID)
}

// @Summary Approve or reject booking
// @Description The item owner decides a WAITING booking.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Item owner id"
// @Param bookingId path int true "Booking id"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, middleware.ErrInvalidSharerUser)
		return
	}
	bookingID, err := parseID(c.Param("bookingId"), errInvalidBookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.Abort(c, errs.Mark(errInvalidApproved, errs.ErrBadRequestParam))
		return
	}

	if err := h.cmds.Decide(c.Request.Context(), bookingID, userID, approved); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, bookingID, userID)
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester id"
// @Param bookingId path int true "Booking id"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, middleware.ErrInvalidSharerUser)
		return
	}
	bookingID, err := parseID(c.Param("bookingId"), errInvalidBookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, bookingID, userID)
}

// @Summary List bookings made by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, h.q.ListForBooker)
}

// @Summary List bookings of items owned by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Item owner id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.q.ListForOwner)
}

type listFunc func(ctx context.Context, userID int64, state booking.State) ([]*queries.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, fetch listFunc) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, middleware.ErrInvalidSharerUser)
		return
	}
	raw := c.DefaultQuery("state", "ALL")
	state, err := booking.ParseState(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+raw, nil)
		return
	}

	views, err := fetch(c.Request.Context(), userID, state)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingViews(views, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// respond reloads the booking through the read side so every endpoint
// renders the same representation.
func (h *BookingHandler) respond(c *gin.Context, bookingID, userID int64) {
	view, err := h.q.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingView(view, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseID(raw string, invalid error) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Mark(errs.Wrap(invalid, raw), errs.ErrBadRequestParam)
	}
	return id, nil
}
