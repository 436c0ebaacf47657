// Package http contiene el router Fiber, el middleware de autenticación y
// los handlers de la API de la tienda.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ElectroPos-api/internal/application/analytics"
	"github.com/jhoicas/ElectroPos-api/internal/application/auth"
	apppos "github.com/jhoicas/ElectroPos-api/internal/application/pos"
	"github.com/jhoicas/ElectroPos-api/internal/application/purchases"
	"github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/application/usecase"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	CategoryUC      *usecase.CategoryUseCase
	SupplierUC      *usecase.SupplierUseCase
	CustomerUC      *usecase.CustomerUseCase
	AuthUC          *auth.AuthUseCase
	CreateInvoiceUC *sales.CreateSalesInvoiceUseCase
	DocumentUC      *sales.DocumentUseCase
	PurchaseUC      *purchases.PurchaseInvoiceUseCase
	DashboardUC     *analytics.DashboardUseCase
	POSSessions     *apppos.SessionManager
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	// POS: carrito de caja por operador (protegido)
	pos := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.POSSessions)
	pos.Get("/cart", posHandler.GetCart)
	pos.Delete("/cart", posHandler.Clear)
	pos.Post("/cart/items", posHandler.AddItem)
	pos.Put("/cart/items/:productId", posHandler.SetQuantity)
	pos.Delete("/cart/items/:productId", posHandler.RemoveItem)
	pos.Put("/cart/discount", posHandler.SetDiscount)
	pos.Put("/cart/customer", posHandler.SetCustomer)
	pos.Put("/cart/payment-method", posHandler.SetPaymentMethod)
	pos.Post("/cart/checkout", posHandler.Checkout)

	// Sales invoices (protegido)
	salesGroup := protected.Group("/sales-invoices")
	salesHandler := NewSalesInvoiceHandler(deps.CreateInvoiceUC, deps.DocumentUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Get("/:id/pdf", salesHandler.GetPDF)
	salesGroup.Get("/:id/xml", salesHandler.GetXML)

	// Purchase invoices (protegido)
	purchasesGroup := protected.Group("/purchase-invoices")
	purchaseHandler := NewPurchaseInvoiceHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", authHandler.ListUsers)
}
