package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// CreateContactItemHandler godoc
// @Summary Submit a contact form message
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "name, company, email and optional phone/comments"
// @Success 201 {object} ContactResult
// @Failure 422 {string} string "Invalid input"
// @Router /api/contact [post]
func CreateContactItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Company) == "" ||
		!strings.Contains(req.Email, "@") {
		http.Error(w, "invalid inputs received, please check your data", http.StatusUnprocessableEntity)
		return
	}

	item := models.ContactItem{
		Name:     req.Name,
		Company:  req.Company,
		Email:    req.Email,
		Phone:    req.Phone,
		Comments: req.Comments,
		Date:     time.Now().UTC(),
	}

	created, err := contactRepo.CreateContactItem(r.Context(), item)
	if err != nil {
		log.Printf("failed to store contact item: %v", err)
		http.Error(w, "error sending contact info, please try again", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, ContactResult{
		Message:     "Contact item created!",
		ContactItem: created,
	})
}

// GetContactItemsHandler godoc
// @Summary List contact form messages
// @Tags contact
// @Produce json
// @Success 200 {object} ContactsResult
// @Failure 404 {string} string "No contact items"
// @Router /api/contact [get]
func GetContactItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := contactRepo.GetAllContactItems(r.Context())
	if err != nil {
		log.Printf("failed to fetch contact items: %v", err)
		http.Error(w, "fetching contacts failed, please try again", http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		http.Error(w, "no contact items to fetch", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ContactsResult{Contact: items})
}
