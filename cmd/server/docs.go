package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           FarmSight API
// @version         0.1.0
// @description     Crop profitability and risk estimates for Bihar farmers.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
