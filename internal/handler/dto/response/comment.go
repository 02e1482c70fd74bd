package response

import (
	"time"

	"shareit/internal/pkg/datetime"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

func FromCommentView(v *queries.CommentView, loc *time.Location) (*CommentResponse, error) {
	res := &CommentResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map comment view")
	}
	res.Created = datetime.Format(v.Created, loc)
	return res, nil
}
