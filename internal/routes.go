package internal

import (
	"net/http"
	"pidash/internal/controllers"
	"pidash/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/widgets/status", http.HandlerFunc(apiController.GetStatus))
	routers.Get("/widgets/top-domains", http.HandlerFunc(apiController.GetTopDomains))
	routers.Get("/widgets/history", http.HandlerFunc(apiController.GetHistory))
	return routers
}
