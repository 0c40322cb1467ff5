package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/contactrelay/internal/app"
)

const shutdownTimeout = 10 * time.Second

// @title           Contact Relay API
// @version         1.0
// @description     Contact Relay validates contact form submissions and delivers them by email through AWS SES.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
func main() {
	application := app.New()
	<-application.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx)
}
