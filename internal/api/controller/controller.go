package controller

import (
	"github.com/ougirez/autocatalog/internal/service/catalog"
)

type Controller struct {
	service *catalog.Service
}

func NewController(service *catalog.Service) *Controller {
	return &Controller{service: service}
}
