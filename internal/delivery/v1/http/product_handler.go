package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// productRequest принимает цену десятичной строкой ("89.99"),
// наружу товар всегда отдаётся с ценой в копейках.
type productRequest struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Stock       int64    `json:"stock"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
}

func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.GetAll(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		p.logger.Warnf("%d %s: price=%q", http.StatusBadRequest, err.Error(), req.Price)
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.Create(r.Context(), &usecase.CreateProductReq{
		Name:        req.Name,
		Price:       priceCents,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		Description: req.Description,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, product)
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		p.logger.Warnf("%d %s: price=%q", http.StatusBadRequest, err.Error(), req.Price)
		WriteError(w, err)
		return
	}

	product := &domain.Product{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Price:       priceCents,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		Status:      domain.ProductStatus(req.Status),
		Description: req.Description,
	}

	updated, err := p.productUsecase.Update(r.Context(), product)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, updated)
}

func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"ok": true})
}
