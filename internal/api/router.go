package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mateuszng/quizdeck/internal/middleware"
	"github.com/mateuszng/quizdeck/internal/services"
)

type Router struct {
	store    Store
	auth     *services.AuthService
	registry *services.RegistryService
	attempts *services.AttemptService
}

func NewRouter(store Store) *Router {
	return &Router{
		store:    store,
		auth:     services.NewAuthService(newAuthStoreAdapter(store), middleware.SignToken),
		registry: services.NewRegistryService(newRegistryStoreAdapter(store)),
		attempts: services.NewAttemptService(newAttemptStoreAdapter(store)),
	}
}

func (rt *Router) Register(r *mux.Router) {
	r.HandleFunc("/login", rt.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/register", rt.handleRegister).Methods(http.MethodPost)

	admin := r.PathPrefix("/tests").Subrouter()
	admin.Use(middleware.RequireAuth, middleware.RequireAdmin)
	admin.HandleFunc("", rt.handleListTests).Methods(http.MethodGet)
	admin.HandleFunc("", rt.handleCreateTest).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", rt.handleDeleteTest).Methods(http.MethodDelete)
	admin.HandleFunc("/{id}/questions", rt.handleListQuestions).Methods(http.MethodGet)
	admin.HandleFunc("/{id}/questions", rt.handleAddQuestion).Methods(http.MethodPost)
	admin.HandleFunc("/{testId}/questions/{questionId}", rt.handleDeleteQuestion).Methods(http.MethodDelete)

	user := r.PathPrefix("/user").Subrouter()
	user.Use(middleware.RequireAuth)
	user.HandleFunc("/tests", rt.handleUserTests).Methods(http.MethodGet)
	user.HandleFunc("/tests/{id}/quiz", rt.handleQuiz).Methods(http.MethodGet)
	user.HandleFunc("/test-attempt", rt.handleRecordAttempt).Methods(http.MethodPost)
	user.HandleFunc("/past-tests", rt.handlePastTests).Methods(http.MethodGet)
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := rt.auth.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token":    res.Token,
		"role":     res.User.Role,
		"username": res.User.Username,
	})
}

// POST /register
func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := rt.auth.Register(req.Username, req.Password)
	if err != nil {
		// duplicate username surfaces as 400 on this route
		if se, ok := services.AsServiceError(err); ok && se.Code == services.ErrorConflict {
			writeError(w, http.StatusBadRequest, se.Message)
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "registration successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

// GET /tests (admin) — full objects including questions
func (rt *Router) handleListTests(w http.ResponseWriter, r *http.Request) {
	tests, err := rt.registry.ListTests()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tests)
}

// POST /tests (admin)
func (rt *Router) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := rt.registry.CreateTest(req.Title, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DELETE /tests/{id} (admin)
func (rt *Router) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	if err := rt.registry.DeleteTest(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /tests/{id}/questions (admin)
func (rt *Router) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := rt.registry.ListQuestions(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// POST /tests/{id}/questions (admin)
func (rt *Router) handleAddQuestion(w http.ResponseWriter, r *http.Request) {
	var q services.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := rt.registry.AddQuestion(mux.Vars(r)["id"], &q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DELETE /tests/{testId}/questions/{questionId} (admin)
func (rt *Router) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := rt.registry.DeleteQuestion(vars["testId"], vars["questionId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /user/tests — simplified list without question bodies
func (rt *Router) handleUserTests(w http.ResponseWriter, r *http.Request) {
	sums, err := rt.registry.ListTestSummaries()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sums)
}

// GET /user/tests/{id}/quiz
func (rt *Router) handleQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := rt.registry.GetQuiz(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// POST /user/test-attempt — user id comes from the token, never the body
func (rt *Router) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}
	var req struct {
		TestID         string `json:"testId"`
		Score          int    `json:"score"`
		TotalQuestions int    `json:"totalQuestions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	attempt, err := rt.attempts.RecordAttempt(claims.UID, req.TestID, req.Score, req.TotalQuestions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attempt)
}

// GET /user/past-tests
func (rt *Router) handlePastTests(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}
	attempts, err := rt.attempts.ListAttempts(claims.UID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attempts)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			writeError(w, http.StatusBadRequest, se.Message)
		case services.ErrorUnauthorized:
			writeError(w, http.StatusUnauthorized, se.Message)
		case services.ErrorForbidden:
			writeError(w, http.StatusForbidden, se.Message)
		case services.ErrorNotFound:
			writeError(w, http.StatusNotFound, se.Message)
		case services.ErrorConflict:
			writeError(w, http.StatusConflict, se.Message)
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}
