package main

import "admin_backend/internal/app"

func main() {
	app.Run()
}
