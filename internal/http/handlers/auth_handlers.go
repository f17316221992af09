package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// SignupHandler godoc
// @Summary Register a new user and return a JWT token
// @Tags users
// @Accept json
// @Produce json
// @Param user body SignupRequest true "name, company, email and password"
// @Success 201 {object} AuthResult
// @Failure 409 {string} string "Email already registered"
// @Failure 422 {string} string "Invalid input"
// @Router /api/users/signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Company) == "" ||
		!strings.Contains(req.Email, "@") || len(req.Password) < 6 {
		http.Error(w, "invalid inputs passed, please check your data", http.StatusUnprocessableEntity)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		http.Error(w, "could not create new user", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(r.Context(), models.User{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Created:      time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "user with that email already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create new user, please try again", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "signup failed, please try again", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResult{
		Message:  "signup successful",
		UserData: UserData{UserID: user.ID, Email: user.Email, Token: token},
	})
}

// LoginHandler godoc
// @Summary Authenticate a user and return a JWT token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} AuthResult
// @Failure 401 {string} string "Invalid credentials"
// @Router /api/users/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "incorrect form submission", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByEmail(r.Context(), creds.Email)
	if err != nil {
		http.Error(w, "invalid credentials, please try again", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		http.Error(w, "invalid credentials, please try again", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResult{
		Message:  "login successful",
		UserData: UserData{UserID: user.ID, Email: user.Email, Token: token},
	})
}

// GetUsersHandler godoc
// @Summary List registered users
// @Tags users
// @Produce json
// @Success 200 {object} UsersResult
// @Failure 500 {string} string "Internal error"
// @Router /api/users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("failed to fetch users: %v", err)
		http.Error(w, "fetching users failed, please try again", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, UsersResult{Users: users})
}
