package routes

import (
	"stitchworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathMaterials = "/materials"
)

func addInventoryRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, materialHandler *handlers.MaterialHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProductByID)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
		products.PATCH("/:id/stock", productHandler.AdjustProductStock)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("", materialHandler.ListMaterials)
		materials.GET("/:id", materialHandler.GetMaterialByID)
		materials.PUT("/:id", materialHandler.UpdateMaterial)
		materials.DELETE("/:id", materialHandler.DeleteMaterial)
		materials.PATCH("/:id/quantity", materialHandler.AdjustMaterialQuantity)
	}
}
