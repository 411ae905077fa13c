package main

import "shopdesk/internal/app"

// @title           ShopDesk API
// @version         1.0
// @description     Back-office API for managing clients, shops and payment preferences.
// @BasePath        /
func main() {
	app.Run()
}
