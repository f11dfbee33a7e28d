// Package main is the entry point for the product service.
//
// @title Product API
// @version 1.0
// @description CRUD API for the product catalog
//
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import "github.com/yourorg/productsvc/cmd/productsvc/cmd"

func main() {
	cmd.Execute()
}
