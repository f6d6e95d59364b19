package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/handlers"
)

const (
	PathServiceRequests = "/service-requests"
)

func addServiceRequestRoutes(
	rg *gin.RouterGroup,
	srHandler *handlers.ServiceRequestHandler,
	quotationHandler *handlers.QuotationHandler,
	assignmentHandler *handlers.AssignmentHandler,
	paymentHandler *handlers.PaymentHandler,
	messageHandler *handlers.MessageHandler,
) {
	serviceRequests := rg.Group(PathServiceRequests)
	{
		serviceRequests.POST("", srHandler.CreateServiceRequest)
		serviceRequests.GET("", srHandler.ListServiceRequests)
		serviceRequests.GET("/:id", srHandler.GetServiceRequest)
		serviceRequests.PATCH("/:id/status", srHandler.TransitionServiceRequest)
		serviceRequests.POST("/:id/notes", srHandler.AddNote)

		serviceRequests.GET("/:id/quotation", quotationHandler.GetQuotation)
		serviceRequests.PUT("/:id/quotation", quotationHandler.RepriceQuotation)

		serviceRequests.GET("/:id/assignment", assignmentHandler.GetAssignment)
		serviceRequests.PUT("/:id/assignment", assignmentHandler.AssignTechnician)
		serviceRequests.DELETE("/:id/assignment", assignmentHandler.UnassignTechnician)

		serviceRequests.POST("/:id/payments/initial", paymentHandler.CollectInitialPayment)
		serviceRequests.POST("/:id/payments/final", paymentHandler.CollectFinalPayment)
		serviceRequests.GET("/:id/payments", paymentHandler.ListPayments)

		serviceRequests.POST("/:id/message", messageHandler.ComposeStatusMessage)
	}
}
