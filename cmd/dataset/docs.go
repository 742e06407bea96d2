package main

// @title Dataset Service API
// @version 1.0
// @description Bulk synthetic dataset materialization for the supply chain dashboard, with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/traceright/dataset-service
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/traceright/dataset-service/blob/main/LICENSE

// @host localhost:8084
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Dataset
// @tag.description Bulk dataset seeding and clearing endpoints

// @tag.name Auth
// @tag.description Registration and login endpoints

// @tag.name Users
// @tag.description User profile endpoints

// @tag.name Admin
// @tag.description Role and privilege management endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
