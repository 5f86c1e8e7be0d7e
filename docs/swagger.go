// Package docs SiteGate API documentation
package docs

// Swagger documentation info
// @title SiteGate API
// @version 1.0
// @description Account registration, login, and password reset for the SiteGate static site backend

// @host localhost:3000
// @BasePath /api
// @schemes http https

// Auth Endpoints
// @tag.name auth
// @tag.description Account registration and login

// Password Endpoints
// @tag.name auth-password
// @tag.description Password reset flow

// Admin Endpoints
// @tag.name admin
// @tag.description Administrative account operations (unauthenticated)
