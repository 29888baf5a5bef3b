package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type UserHandler struct {
	service interfaces.AccountsService
	logger  logger.Logger
}

func NewUserHandler(service interfaces.AccountsService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type UserRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"papel"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Handle routes /api/usuarios and its subpaths.
func (h *UserHandler) Handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	if len(parts) == 2 {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if parts[2] == "login" {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.login(w, r)
		return
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	if len(parts) == 3 {
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			h.deactivate(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("ativos") == "true"

	users, err := h.service.ListUsers(r.Context(), activeOnly)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	user, err := h.service.CreateUser(r.Context(), interfaces.CreateUserCommand{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.logger.Error("user_creation_failed", "Failed to create user", r.Header.Get("X-Request-ID"), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, interfaces.CreateUserCommand{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) deactivate(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeactivateUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}
