package main

import "github.com/AdityaRaghav22/GYM-SAAS/internal/app"

func main() {
	app.Run()
}
