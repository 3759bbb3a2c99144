package routes

import (
	"roofpro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFormulas  = "/formulas"
	PathEstimates = "/estimates"
	PathMacros    = "/macros"
	PathPayments  = "/payments"
)

func addEstimatingRoutes(rg *gin.RouterGroup, formulaHandler *handlers.FormulaHandler, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.DepositPaymentHandler) {
	formulas := rg.Group(PathFormulas)
	{
		formulas.POST("/evaluate", formulaHandler.Evaluate)
		formulas.POST("/validate", formulaHandler.Validate)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.POST("/preview", estimateHandler.PreviewEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/decline", estimateHandler.DeclineEstimate)
		estimates.PATCH("/cancel", estimateHandler.CancelEstimate)
	}

	macros := rg.Group(PathMacros)
	{
		macros.POST("/:macro_id/expand", estimateHandler.ExpandMacro)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.CreatePaymentByEstimateID)
		payments.GET("/:estimate_id", paymentHandler.GetPaymentByEstimateID)
	}
}
