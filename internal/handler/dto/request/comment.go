package request

import (
	"shareit/internal/usecase/commands"
)

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r CreateCommentRequest) ToCommand(itemID int64) commands.CreateCommentRequest {
	return commands.CreateCommentRequest{ItemID: itemID, Text: r.Text}
}
