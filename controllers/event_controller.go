// Package controllers provides HTTP handlers for the marketing events calendar.
// File: controllers/event_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"marketing-planner/logger"
	"marketing-planner/models"
)

// ---------------- event CRUD ----------------

// ListEvents returns all events with date inside [start, end], ordered by
// date then time ascending. An empty range is a 200 with an empty list.
func ListEvents(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start y end son requeridos"})
		return
	}

	events, err := dataService.ListEvents(start, end)
	if err != nil {
		logger.Error.Println("ListEvents: gateway query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// validateEventInput checks the mandatory fields and normalizes empty
// optional strings to null so the remote table stores NULL, not "".
func validateEventInput(input *models.EventInput) bool {
	if input.Date == "" || input.Time == "" || input.Title == "" {
		return false
	}
	for _, field := range []**string{&input.Channel, &input.Platform, &input.Notes} {
		if *field != nil && **field == "" {
			*field = nil
		}
	}
	return true
}

// CreateEvent inserts a new event owned by the logged-in user. The posted
// flag is left to the storage default (false).
func CreateEvent(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil || !validateEventInput(&input) {
		logger.Warn.Println("CreateEvent: missing date, time or title")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha, hora y título son requeridos"})
		return
	}

	session := sessions.Default(c)
	userID, _ := session.Get("userID").(int64)

	event, err := dataService.CreateEvent(input, userID)
	if err != nil {
		logger.Error.Println("CreateEvent: insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	logger.Info.Printf("CreateEvent: user %d created event %d (%s)", userID, event.ID, event.Title)
	c.JSON(http.StatusOK, event)
}

// UpdateEvent rewrites an existing event. Any authenticated user may edit any
// event; there is no per-row ownership check.
func UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil || !validateEventInput(&input) {
		logger.Warn.Printf("UpdateEvent: missing date, time or title for event %s", id)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha, hora y título son requeridos"})
		return
	}

	event, err := dataService.UpdateEvent(id, input)
	if err != nil {
		logger.Error.Printf("UpdateEvent: update of event %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No existe"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// TogglePosted flips the posted flag of one event. Two calls in sequence
// restore the original value. The fetch and the write are separate gateway
// calls, so concurrent toggles on the same id can lose an update; callers
// that need stronger guarantees must serialize on their side.
func TogglePosted(c *gin.Context) {
	id := c.Param("id")

	current, err := dataService.GetEvent(id)
	if err != nil {
		logger.Error.Printf("TogglePosted: fetch of event %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No existe"})
		return
	}

	updated, err := dataService.SetEventPosted(id, !current.Posted)
	if err != nil {
		logger.Error.Printf("TogglePosted: write for event %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEvent removes an event by id. Admin only. Deleting an id that does
// not exist still reports success: the remote service returns no error for a
// zero-row delete.
func DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	if err := dataService.DeleteEvent(id); err != nil {
		logger.Error.Printf("DeleteEvent: delete of event %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	logger.Info.Printf("DeleteEvent: event %s deleted", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
