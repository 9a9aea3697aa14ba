package internal

import (
	"net/http"

	"cad/internal/controllers"
	"cad/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, exportController *controllers.ExportController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/upload", http.HandlerFunc(apiController.Upload))
	routers.Get("/chats", http.HandlerFunc(apiController.ListChats))
	routers.Delete("/chat", http.HandlerFunc(apiController.DeleteChat))

	routers.Get("/analysis", http.HandlerFunc(apiController.GetAnalysis))
	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/timeline", http.HandlerFunc(apiController.GetTimeline))
	routers.Get("/participants", http.HandlerFunc(apiController.GetParticipants))
	routers.Get("/wordcloud", http.HandlerFunc(apiController.GetWordCloud))
	routers.Get("/heatmap", http.HandlerFunc(apiController.GetHeatmap))
	routers.Get("/patterns", http.HandlerFunc(apiController.GetPatterns))
	routers.Get("/interactions", http.HandlerFunc(apiController.GetInteractions))
	routers.Get("/userwords", http.HandlerFunc(apiController.GetUserWordClouds))
	routers.Get("/content", http.HandlerFunc(apiController.GetContent))
	routers.Get("/summary", http.HandlerFunc(apiController.GetSummary))

	routers.Get("/export/json", http.HandlerFunc(exportController.ExportJSON))
	routers.Get("/export/csv", http.HandlerFunc(exportController.ExportCSV))
	routers.Get("/export/summary", http.HandlerFunc(exportController.ExportSummary))
	return routers
}
