package web

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"

	"postboard/auth"
	"postboard/config"
	"postboard/db"
	"postboard/utils"
)

// Router assembles the application: session store, middleware, templates
// and routes. db.Init and models.Init must have run first.
func Router() *gin.Engine {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	_ = router.SetTrustedProxies([]string{})
	router.Use(utils.RequestLogMiddleware)

	router.LoadHTMLGlob(config.TEMPLATES_GLOB)

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: config.SESSION_MAX_AGE})
	router.Use(sessions.Sessions(config.SESSION_COOKIE, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.CacheControl(0))

	router.GET("/", Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:post_id/", PostDetail)

	// Routes below require a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreate)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:post_id/edit/", PostEdit)
	authRouter.POST("/posts/:post_id/edit/", PostEdit)

	router.GET("/auth/signup/", auth.SignupView)
	router.POST("/auth/signup/", auth.SignupSubmit)
	router.GET("/auth/login/", auth.LoginView)
	router.POST("/auth/login/", auth.LoginSubmit)
	router.POST("/auth/logout/", auth.Logout)

	return router
}
