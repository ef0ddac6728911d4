package handlers

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/inventory-app/internal/auth"
	models "github.com/rogerio-castellano/inventory-app/internal/models"
	repo "github.com/rogerio-castellano/inventory-app/internal/repo"
)

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}

	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required", nil)
		return
	}
	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		writeError(w, http.StatusBadRequest, "username or password too short", nil)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
		Role:         "user",
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			writeError(w, http.StatusConflict, "username already exists", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to register user", err)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{
		Message: "user registered",
		Token:   token,
	})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
