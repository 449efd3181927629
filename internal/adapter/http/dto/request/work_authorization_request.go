package request

type TransitionWorkAuthorizationRequest struct {
	Status string `json:"status" binding:"required"`
}
