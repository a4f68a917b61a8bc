package main

import (
	"strings"

	"github.com/gin-gonic/autotls"
	"github.com/sirupsen/logrus"

	"postboard/config"
	"postboard/db"
	"postboard/models"
	"postboard/web"
)

func main() {
	db.Init()
	models.Init()

	router := web.Router()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logrus.Fatalf("Server stopped: %v", err)
}
