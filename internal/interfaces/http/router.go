package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/auth"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	MapaUC      *usecase.MapaUseCase
	QuadraUC    *usecase.QuadraUseCase
	LoteUC      *usecase.LoteUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	DashboardUC *usecase.DashboardUseCase
	ReservaUC   *reservation.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
//
// A vitrine pública (lotes disponíveis, check de disponibilidade e a própria
// reserva) não exige login: o comprador interage sem conta. A gestão de
// mapas, quadras, lotes, usuários e o ciclo de vida das reservas exigem
// Bearer Token, com escrita restrita a admin/dev.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin, entity.RoleDev)

	// Usuários (registro e login públicos)
	usuarioHandler := NewUsuarioHandler(deps.AuthUC, deps.UsuarioUC)
	usuarios := api.Group("/usuarios")
	usuarios.Post("/register", usuarioHandler.Register)
	usuarios.Get("/login", usuarioHandler.Login)
	usuarios.Get("/", authRequired, adminOnly, usuarioHandler.List)
	usuarios.Post("/", authRequired, adminOnly, usuarioHandler.Create)
	usuarios.Get("/:id", authRequired, usuarioHandler.GetByID)
	usuarios.Put("/:id", authRequired, usuarioHandler.Update)
	usuarios.Put("/:id/aprovacao", authRequired, adminOnly, usuarioHandler.Aprovar)
	usuarios.Delete("/:id", authRequired, adminOnly, usuarioHandler.Delete)

	// Mapas: vitrine pública + rotas fixas antes das parametrizadas.
	mapaHandler := NewMapaHandler(deps.MapaUC)
	quadraHandler := NewQuadraHandler(deps.QuadraUC)
	loteHandler := NewLoteHandler(deps.LoteUC)
	reservaHandler := NewReservaHandler(deps.ReservaUC)

	mapas := api.Group("/mapas")
	mapas.Get("/lotes/valido", loteHandler.VerificarDisponibilidade)
	mapas.Get("/lotes/disponiveis", loteHandler.ListDisponiveis)
	mapas.Post("/lotes/reservar", reservaHandler.Reservar)
	mapas.Get("/", mapaHandler.List)
	mapas.Post("/", authRequired, adminOnly, mapaHandler.Create)
	mapas.Get("/:id", mapaHandler.GetByID)
	mapas.Put("/:id", authRequired, adminOnly, mapaHandler.Update)
	mapas.Post("/:id/imagem", authRequired, adminOnly, mapaHandler.UploadImagem)
	mapas.Delete("/:id", authRequired, adminOnly, mapaHandler.Delete)
	mapas.Get("/:id/quadras", quadraHandler.ListByMapa)
	mapas.Get("/:id/lotes", loteHandler.ListByMapa)

	// Quadras (escrita restrita a admin/dev)
	quadras := api.Group("/quadras")
	quadras.Post("/", authRequired, adminOnly, quadraHandler.Create)
	quadras.Get("/:id", quadraHandler.GetByID)
	quadras.Put("/:id", authRequired, adminOnly, quadraHandler.Update)
	quadras.Delete("/:id", authRequired, adminOnly, quadraHandler.Delete)
	quadras.Get("/:id/lotes", loteHandler.ListByQuadra)

	// Lotes (escrita restrita a admin/dev)
	lotes := api.Group("/lotes")
	lotes.Post("/", authRequired, adminOnly, loteHandler.Create)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Put("/:id", authRequired, adminOnly, loteHandler.Update)
	lotes.Delete("/:id", authRequired, adminOnly, loteHandler.Delete)

	// Reservas (gestão protegida; confirmação restrita a admin/dev)
	api.Put("/reserva/confirmacao", authRequired, adminOnly, reservaHandler.Confirmar)
	reservas := api.Group("/reservas", authRequired)
	reservas.Get("/", reservaHandler.List)
	reservas.Get("/:id", reservaHandler.GetByID)
	reservas.Get("/:id/comprovante", reservaHandler.Comprovante)
	reservas.Put("/:id/contatada", reservaHandler.MarcarContatada)

	// Dashboard (admin/dev)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", authRequired, adminOnly, dashboardHandler.Resumo)
}
