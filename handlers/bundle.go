package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the endpoint handlers for route registration.
type HandlerBundle struct {
	PlanItineraryHandler gin.HandlerFunc
}
