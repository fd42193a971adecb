package main

import (
	"os"
)

// @title           Alert Case Review API
// @version         1.0
// @description     Review pool and spa alert cases, annotate them and close them; flags slow heating from equipment telemetry.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
