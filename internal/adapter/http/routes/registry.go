package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/handlers"
)

const (
	PathClients     = "/clients"
	PathTechnicians = "/technicians"
)

func addRegistryRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, techHandler *handlers.TechnicianHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", techHandler.CreateTechnician)
		technicians.GET("", techHandler.ListTechnicians)
		technicians.GET("/:id", techHandler.GetTechnician)
		technicians.PUT("/:id", techHandler.UpdateTechnician)
	}
}
