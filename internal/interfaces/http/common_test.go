package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
)

// respondWith monta um app com uma rota que devolve o erro informado.
func respondWith(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return errorJSON(c, err)
	})
	return app
}

func statusAndBody(t *testing.T, app *fiber.App) (int, dto.ErrorResponse) {
	t.Helper()
	resp, errReq := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, errReq)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorJSON_MapeiaSentinelas(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrUsuarioNaoAprovado, http.StatusForbidden, "PENDING_APPROVAL"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrCPFAlreadyExists, http.StatusConflict, "CPF_EXISTS"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("contexto: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("algo inesperado"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, body := statusAndBody(t, respondWith(tc.err))
		assert.Equal(t, tc.status, status, "erro %v", tc.err)
		assert.Equal(t, tc.code, body.Code, "erro %v", tc.err)
	}
}

// A falha de disponibilidade devolve 409 com os IDs dos lotes em conflito,
// para a vitrine destacar no mapa quais lotes já foram levados.
func TestErrorJSON_LotesIndisponiveisIncluiIDs(t *testing.T) {
	err := &reservation.LotesIndisponiveisError{LoteIDs: []string{"l2", "l7"}}
	status, body := statusAndBody(t, respondWith(err))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "LOTES_INDISPONIVEIS", body.Code)
	assert.Equal(t, []string{"l2", "l7"}, body.Lotes)
}

// Mensagens de erros internos nunca vazam para o cliente.
func TestErrorJSON_ErroInternoNaoVazaMensagem(t *testing.T) {
	_, body := statusAndBody(t, respondWith(fmt.Errorf("dsn com senha secreta")))
	assert.NotContains(t, body.Message, "secreta")
}
