package api

type checkRequest struct {
	Password string `json:"password" binding:"required"`
}
