package main

import "festacconnect_backend/internal/app"

func main() {
	app.Run()
}
