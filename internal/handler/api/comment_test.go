package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	commandsmock "shareit/internal/mock/commands"
	queriesmock "shareit/internal/mock/queries"
	"shareit/internal/pkg/errs"
	"shareit/internal/testkit/builder"
	"shareit/internal/testkit/httptest"
	"shareit/internal/testkit/testutil"
	"shareit/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCommentCommands
	mockQueries  *queriesmock.MockCommentQueries
}

func (s *CommentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCommentQueries(s.mockCtrl)
	h := api.NewCommentHandler(s.mockCommands, s.mockQueries, time.UTC)

	s.router.POST("/items/:itemId/comment", middleware.RequireSharerUser(), h.Create)
}

func (s *CommentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommentHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

func (s *CommentHandlerTestSuite) TestCreate() {
	url := "/items/10/comment"
	reqBody := builder.NewCommentBuilder().BuildCreateRequestDTO()
	view := builder.NewCommentBuilder().BuildViewQuery()

	s.Run("success: returns the stored comment", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateCommentRequest{ItemID: 10, Text: reqBody.Text}, bookerID).
			Return(&commands.CreateCommentResult{CommentID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerID)

		var body resdto.CommentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Text, body.Text)
		s.Equal(view.AuthorName, body.AuthorName)
		s.Equal("2050-01-02T09:00:00", body.Created)
	})

	s.Run("error: 400 on invalid body or path", func() {
		cases := []struct {
			name string
			path string
			body any
		}{
			{name: "missing text", path: url, body: testutil.DtoMap(s.T(), reqBody, testutil.Field("text", nil))},
			{name: "text too long", path: url, body: testutil.DtoMap(s.T(), reqBody, testutil.Field("text", strings.Repeat("a", 2001)))},
			{name: "non-numeric item", path: "/items/drill/comment", body: reqBody},
			{name: "zero item", path: "/items/0/comment", body: reqBody},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.path, tc.body, bookerID)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps command errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "not eligible", err: errs.Mark(comment.ErrNotEligible, errs.ErrBadRequestParam), status: http.StatusBadRequest, msg: "no finished approved booking"},
			{name: "blank text", err: errs.Mark(comment.ErrEmptyText, errs.ErrBadRequestParam), status: http.StatusBadRequest},
			{name: "unknown item", err: errs.Mark(commands.ErrItemNotFound, errs.ErrNotFound), status: http.StatusNotFound, msg: "item not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), bookerID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
