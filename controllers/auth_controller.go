package controllers

import (
	"github.com/aisyahz/tepico88/pkg/resp"
	"github.com/aisyahz/tepico88/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Gate *services.GateService
}

func NewAuthController(gate *services.GateService) *AuthController {
	return &AuthController{Gate: gate}
}

type loginReq struct {
	Password string `json:"password"`
}

// POST /auth/login
// Mismatch gets a generic message and no lockout; retry is manual.
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.Gate.Login(req.Password)
	if err != nil {
		resp.Unauthorized(c, "incorrect password")
		return
	}

	resp.OK(c, gin.H{"token": token, "role": "staff"})
}
