package main

// @title Vastrika Storefront API
// @version 1.0
// @description Saree storefront API: catalog with sample-data fallback, orders, bargaining and custom design requests

// @contact.name API Support
// @contact.email support@vastrika.example

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
