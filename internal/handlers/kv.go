package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"medicab-server/internal/middleware"
	"medicab-server/internal/storage"
	"medicab-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxValueBytes = 8 << 20

// KVHandler serves the generic key-value API.
type KVHandler struct {
	Backend storage.Backend
}

// NewKVHandler creates a new KVHandler.
func NewKVHandler(backend storage.Backend) *KVHandler {
	return &KVHandler{Backend: backend}
}

// keyParam reads and validates the :key path parameter.
func keyParam(c *gin.Context) (string, bool) {
	key := c.Param("key")
	if err := utils.ValidateVar(key, "required,max=255,printascii"); err != nil {
		utils.BadRequest(c, "Invalid key: "+utils.FormatValidationError(err))
		return "", false
	}
	return key, true
}

// Get returns the JSON value stored under the key.
func (h *KVHandler) Get(c *gin.Context) {
	key, ok := keyParam(c)
	if !ok {
		return
	}

	value, err := h.Backend.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFound(c, storage.NotFoundMessage)
		} else {
			utils.InternalServerError(c, "Storage error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Value fetched successfully", json.RawMessage(value))
}

// Set stores the request body, which must be a JSON document, under the key.
func (h *KVHandler) Set(c *gin.Context) {
	key, ok := keyParam(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxValueBytes))
	if err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if !json.Valid(body) {
		utils.BadRequest(c, "Invalid request payload: value must be valid JSON")
		return
	}

	if err := h.Backend.Set(c.Request.Context(), key, body); err != nil {
		utils.InternalServerError(c, "Storage error: "+err.Error())
		return
	}

	if client, ok := middleware.GetClientFromContext(c); ok {
		log.Printf("kv: %s wrote %q (%d bytes)", client, key, len(body))
	}
	utils.Success(c, "Value stored successfully", nil)
}

// Delete removes the key. Deleting an absent key succeeds.
func (h *KVHandler) Delete(c *gin.Context) {
	key, ok := keyParam(c)
	if !ok {
		return
	}

	if err := h.Backend.Delete(c.Request.Context(), key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		utils.InternalServerError(c, "Storage error: "+err.Error())
		return
	}

	utils.Success(c, "Value deleted successfully", nil)
}
