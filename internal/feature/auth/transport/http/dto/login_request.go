package dto

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
