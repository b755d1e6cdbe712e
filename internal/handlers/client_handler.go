package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/httperr"
	"github.com/BruksfildServices01/clientbook/internal/httpresp"
	"github.com/BruksfildServices01/clientbook/internal/logging"
	"github.com/BruksfildServices01/clientbook/internal/middleware"
	ucClient "github.com/BruksfildServices01/clientbook/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	uc *ucClient.Set
}

func NewClientHandler(uc *ucClient.Set) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Email     string   `json:"email" binding:"required"`
	Phones    []string `json:"phones"`
}

// Phones distinguishes "absent" (keep) from "[]" (remove all).
type ChangeClientRequest struct {
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phones    *[]string `json:"phones"`
}

type AddPhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	client, err := h.uc.Create.Execute(c.Request.Context(), ucClient.CreateClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phones:    req.Phones,
	})
	if err != nil {
		h.fail(c, err, "failed_to_create_client")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// LIST / SEARCH
// ======================================================

// List accepts first_name, last_name, email and phone query parameters.
// A parameter that is absent or blank does not filter.
func (h *ClientHandler) List(c *gin.Context) {
	rows, err := h.uc.Find.Execute(c.Request.Context(), domain.Filter{
		FirstName: queryPtr(c, "first_name"),
		LastName:  queryPtr(c, "last_name"),
		Email:     queryPtr(c, "email"),
		Phone:     queryPtr(c, "phone"),
	})
	if err != nil {
		h.fail(c, err, "failed_to_list_clients")
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	client, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed_to_get_client")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var req ChangeClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucClient.ChangeClientInput{
		ClientID:  id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Phones != nil {
		in.Phones = *req.Phones
		if in.Phones == nil {
			in.Phones = []string{}
		}
	}

	client, err := h.uc.Change.Execute(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "failed_to_update_client")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed_to_delete_client")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// PHONES
// ======================================================

func (h *ClientHandler) AddPhone(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var req AddPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	phone, err := h.uc.AddPhone.Execute(c.Request.Context(), id, req.Phone)
	if err != nil {
		h.fail(c, err, "failed_to_add_phone")
		return
	}

	httpresp.Created(c, phone)
}

func (h *ClientHandler) DeletePhone(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.uc.DeletePhone.Execute(c.Request.Context(), id, c.Param("phone")); err != nil {
		h.fail(c, err, "failed_to_delete_phone")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func clientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return 0, false
	}
	return uint(id), true
}

func queryPtr(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func (h *ClientHandler) fail(c *gin.Context, err error, fallback string) {
	if code := httperr.BusinessCode(err); code != "" {
		switch code {
		case domain.CodeClientNotFound:
			httperr.NotFound(c, code, "Client not found.")
		case domain.CodePhoneNotFound:
			httperr.NotFound(c, code, "Phone not found.")
		case domain.CodeEmailTaken:
			httperr.Conflict(c, code, "Email already in use.")
		case domain.CodePhoneTaken:
			httperr.Conflict(c, code, "Phone already in use.")
		default:
			httperr.BadRequest(c, code, code)
		}
		return
	}

	logging.Errorf("request %s: %s: %v", c.GetString(middleware.ContextRequestID), fallback, err)
	httperr.Internal(c, fallback, "Internal error.")
}
