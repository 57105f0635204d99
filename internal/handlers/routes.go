package handlers

import "net/http"

// RegisterRoutes wires every API route onto the mux
func RegisterRoutes(mux *http.ServeMux, game *GameHandler, sync *SyncHandler, admin *AdminHandler, mw *Middleware) {
	// Player API
	mux.HandleFunc("POST /api/players", mw.RateLimit(game.CreatePlayer))
	mux.HandleFunc("GET /api/players/{id}", game.GetPlayer)
	mux.HandleFunc("GET /api/players/{id}/stats", game.GetStats)
	mux.HandleFunc("POST /api/players/{id}/activities/{kind}/start", game.StartActivity)
	mux.HandleFunc("GET /api/players/{id}/session", game.GetSession)
	mux.HandleFunc("DELETE /api/players/{id}/session", game.EndActivity)
	mux.HandleFunc("POST /api/players/{id}/answer", game.SubmitAnswer)
	mux.HandleFunc("POST /api/players/{id}/memory/flip", game.FlipCard)

	// Device sync gateway
	mux.HandleFunc("POST /sync", mw.RateLimit(sync.Upsert))
	mux.HandleFunc("GET /sync", sync.Get)
	mux.HandleFunc("DELETE /sync", sync.Delete)

	// Admin panel
	mux.HandleFunc("POST /admin/login", mw.RateLimit(admin.Login))
	mux.HandleFunc("POST /admin/logout", admin.Logout)
	mux.HandleFunc("GET /admin/auth/google/start", admin.StartGoogleAuth)
	mux.HandleFunc("GET /admin/auth/google/callback", admin.GoogleCallback)
	mux.HandleFunc("GET /admin/session", mw.RequireAdmin(admin.Session))
	mux.HandleFunc("GET /admin/players", mw.RequireAdmin(admin.ListPlayers))
	mux.HandleFunc("GET /admin/overview", mw.RequireAdmin(admin.Overview))
	mux.HandleFunc("GET /admin/export", mw.RequireAdmin(admin.Export))
	mux.HandleFunc("DELETE /admin/players/{id}", mw.RequireAdmin(mw.CSRFProtect(admin.DeletePlayer)))
	mux.HandleFunc("POST /admin/players/{id}/report", mw.RequireAdmin(mw.CSRFProtect(admin.SendReport)))
}
