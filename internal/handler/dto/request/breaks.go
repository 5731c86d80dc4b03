package request

type CreateBreakRequest struct {
	Date  string   `json:"date" binding:"required"`
	Times []string `json:"times" binding:"required,min=1"`
}
