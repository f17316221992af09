package handlers

import (
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	catalogSvc  *catalog.Service
	userRepo    repo.UserRepository
	contactRepo repo.ContactRepository
)

func SetCatalog(s *catalog.Service) {
	catalogSvc = s
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetContactRepo(r repo.ContactRepository) {
	contactRepo = r
}
