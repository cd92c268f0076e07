package transport

import (
	"errors"
	"net/http"

	"barbershop-api/internal/middleware"
	"barbershop-api/internal/repository"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents a new catalog product
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock" validate:"gte=0"`
	InStock     bool   `json:"in_stock"`
	Featured    bool   `json:"featured"`
}

// UpdateProductRequest represents a partial product update; omitted fields
// are left unchanged
type UpdateProductRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Price           *int64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category        *string `json:"category,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	Stock           *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	InStock         *bool   `json:"in_stock,omitempty"`
	Featured        *bool   `json:"featured,omitempty"`
	PromotionPrice  *int64  `json:"promotion_price,omitempty" validate:"omitempty,gt=0"`
	PromotionActive *bool   `json:"promotion_active,omitempty"`
}

// CreateServiceRequest represents a new bookable service
type CreateServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Active      bool   `json:"active"`
}

// UpdateServiceRequest represents a partial service update
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Active      *bool   `json:"active,omitempty"`
}

// CatalogHandler handles HTTP requests for the product and service catalogs
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes. Reads are public; mutations
// are admin-only.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/featured", h.FeaturedProducts)
		r.Get("/{id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireAdmin)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})
	})

	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", h.ListServices)
		r.Get("/active", h.ActiveServices)
		r.Get("/{id}", h.GetService)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireAdmin)
			r.Post("/", h.CreateService)
			r.Put("/{id}", h.UpdateService)
			r.Delete("/{id}", h.DeleteService)
		})
	})
}

// ListProducts handles listing the whole product catalog
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// FeaturedProducts handles the storefront front-page listing
func (h *CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.FeaturedProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list featured products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list featured products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct handles fetching one product
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct handles adding a product to the catalog
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		InStock:     req.InStock,
		Featured:    req.Featured,
	})
	if err != nil {
		h.logger.Error("Product creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ID), zap.String("name", product.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles a partial product update
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(r.Context(), id, service.UpdateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		Stock:           req.Stock,
		InStock:         req.InStock,
		Featured:        req.Featured,
		PromotionPrice:  req.PromotionPrice,
		PromotionActive: req.PromotionActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Product update failed", zap.Error(err), zap.Int64("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct handles removing a product from the catalog
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Product deletion failed", zap.Error(err), zap.Int64("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	h.logger.Info("Product deleted", zap.Int64("product_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// ListServices handles listing the whole service catalog
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.ListServices(r.Context())
	if err != nil {
		h.logger.Error("Failed to list services", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list services")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, services)
}

// ActiveServices handles listing services open for booking
func (h *CatalogHandler) ActiveServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.ActiveServices(r.Context())
	if err != nil {
		h.logger.Error("Failed to list active services", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list active services")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, services)
}

// GetService handles fetching one service
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	svc, err := h.catalogService.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "service not found")
			return
		}

		h.logger.Error("Failed to get service", zap.Error(err), zap.Int64("service_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get service")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, svc)
}

// CreateService handles adding a bookable service
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Service validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(r.Context(), service.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Active:      req.Active,
	})
	if err != nil {
		h.logger.Error("Service creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create service")
		return
	}

	h.logger.Info("Service created", zap.Int64("service_id", svc.ID), zap.String("name", svc.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, svc)
}

// UpdateService handles a partial service update
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Service update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(r.Context(), id, service.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Active:      req.Active,
	})
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "service not found")
			return
		}

		h.logger.Error("Service update failed", zap.Error(err), zap.Int64("service_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update service")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, svc)
}

// DeleteService handles removing a service
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "service not found")
			return
		}

		h.logger.Error("Service deletion failed", zap.Error(err), zap.Int64("service_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete service")
		return
	}

	h.logger.Info("Service deleted", zap.Int64("service_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "service deleted"})
}
