package user

import (
	"net/http"

	"github.com/ankit-singh26/Whiteboard-Project/global"
	"github.com/ankit-singh26/Whiteboard-Project/logger"
	"github.com/ankit-singh26/Whiteboard-Project/module/user/service"
	"github.com/ankit-singh26/Whiteboard-Project/service/mgo"
	"github.com/ankit-singh26/Whiteboard-Project/tools/errs"
	"github.com/gin-gonic/gin"
)

type SignupReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func HandlerSignup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}

	res, err := service.Signup(c.Request.Context(), mgo.GetDB(), global.JWTOptions(), service.SignupParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": res.Token, "username": res.Username})
}

func HandlerLogin(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}

	res, err := service.Login(c.Request.Context(), mgo.GetDB(), global.JWTOptions(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": res.Token, "username": res.Username, "userId": res.UserID})
}

func respondError(c *gin.Context, err error) {
	status, body := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("[user] %s: %+v", c.FullPath(), err)
	}
	c.JSON(status, body)
}
