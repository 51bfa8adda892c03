package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/credential"
	"github.com/georgemunganga/stockroom-api/internal/logger"
	"github.com/georgemunganga/stockroom-api/internal/validate"
)

type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/users", h.registerUser)
	router.Post("/api/users/", h.registerUser)
}

type errorBody struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// validationBodies holds the response for each registration validation code.
var validationBodies = map[string]errorBody{
	validate.CodeUsernameEmpty: {Error: "Username field is empty."},
	validate.CodeEmailEmpty: {
		Error:  "Email field is empty.",
		Errors: map[string]string{"email": "Email is empty."},
	},
	validate.CodeEmailInvalid: {
		Error:  "Email did not match format",
		Errors: map[string]string{"email": "Email not valid."},
	},
	validate.CodePasswordEmpty: {
		Error:  "Password field is empty.",
		Errors: map[string]string{"password": "Password empty."},
	},
	validate.CodePasswordInvalid: {
		Error:  "Password did not match regex",
		Errors: map[string]string{"password": "Password not valid."},
	},
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		Message string `json:"message"`
		User    *User  `json:"user"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: "Invalid request body."})
		return
	}

	if err := validate.Registration(req.Username, req.Email, req.Password); err != nil {
		respond(w, http.StatusBadRequest, validationBodies[apperr.CodeOf(err)])
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		log := logger.WithRequestID(h.log, r).With(zap.String("username", req.Username), zap.Error(err))
		switch {
		case apperr.KindOf(err) == apperr.KindConflict:
			respond(w, http.StatusConflict, errorBody{
				Errors: map[string]string{"email": "Email or username already exists"},
			})
		case apperr.CodeOf(err) == credential.CodeHashFailure:
			log.Error("hash password failed")
			respond(w, http.StatusInternalServerError, errorBody{Error: "Server Error"})
		default:
			log.Error("register user failed")
			respond(w, http.StatusInternalServerError, errorBody{Error: "Database Error: User Insert Error"})
		}
		return
	}

	logger.WithRequestID(h.log, r).Info("user added", zap.Int64("id", user.ID), zap.String("username", user.Username))
	respond(w, http.StatusOK, response{Message: "User Added:", User: user})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
