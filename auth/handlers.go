package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"postboard/models"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required"`
}

func LoginView(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

func LoginSubmit(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "username and password are required"})
		return
	}
	user, ok := models.UserLogin(r.Username, r.Password)
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "wrong username or password"})
		return
	}
	LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func SignupView(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{})
}

// SignupSubmit creates the user and logs them straight in.
func SignupSubmit(c *gin.Context) {
	r := SignupRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Error": "username and password are required"})
		return
	}
	user, err := models.UserCreate(r.Username, r.Name, r.Password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Error": "that username is taken"})
		return
	}
	LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func Logout(c *gin.Context) {
	LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
