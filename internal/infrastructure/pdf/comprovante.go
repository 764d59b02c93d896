// Package pdf gera o comprovante de reserva de lotes em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do empreendimento  │  N° Reserva + Data       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + CPF + contato                              │
//	│  VENDEDOR: Nome + CRECI/CPF + contato                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Lote | Área | Preço | Entrada | Parcelas           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + forma de pagamento                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Rodapé: validade da reserva                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 90, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reservation.ComprovanteGenerator = (*MarotoComprovanteGenerator)(nil)

// MarotoComprovanteGenerator gera o comprovante usando Maroto v2.
type MarotoComprovanteGenerator struct {
	empreendimento string
}

// NewMarotoComprovanteGenerator constrói o gerador com o nome do
// empreendimento que aparece no cabeçalho.
func NewMarotoComprovanteGenerator(empreendimento string) *MarotoComprovanteGenerator {
	return &MarotoComprovanteGenerator{empreendimento: empreendimento}
}

// GerarComprovante gera o PDF e devolve seus bytes.
func (g *MarotoComprovanteGenerator) GerarComprovante(
	_ context.Context,
	reserva *entity.Reserva,
	lotes []*entity.Lote,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Reserva de Lotes", true).
		WithAuthor(g.empreendimento, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.empreendimento, reserva))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(reserva))
	m.AddRows(vendedorRow(reserva))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLoteRows(reserva, lotes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(reserva))

	m.AddRows(line.NewRow(3))
	m.AddRows(rodapeRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar comprovante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empreendimento (esq) e número + data da reserva (dir).
func headerRow(empreendimento string, reserva *entity.Reserva) core.Row {
	data := reserva.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(empreendimento, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprovante de Reserva de Lotes", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(reserva.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clienteRow(reserva *entity.Reserva) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(reserva.ClienteNome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Email: %s   |   Tel: %s",
				formatCPF(reserva.ClienteCPF),
				nonEmpty(reserva.ClienteEmail, "—"),
				nonEmpty(reserva.ClienteTelefone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func vendedorRow(reserva *entity.Reserva) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   CPF: %s   |   Tel: %s",
				reserva.VendedorNome,
				nonEmpty(formatCPF(reserva.VendedorCPF), "—"),
				nonEmpty(reserva.VendedorTelefone, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Lote", 3, align.Left),
		h("Área (m²)", 2, align.Right),
		h("Preço", 3, align.Right),
		h("Entrada", 2, align.Right),
		h("Parcelas", 2, align.Center),
	)
}

// tableLoteRows: uma linha por lote da reserva, com as condições negociadas.
func tableLoteRows(reserva *entity.Reserva, lotes []*entity.Lote) []core.Row {
	porID := make(map[string]*entity.Lote, len(lotes))
	for _, l := range lotes {
		porID[l.ID] = l
	}
	result := make([]core.Row, 0, len(reserva.Lotes))
	for _, linha := range reserva.Lotes {
		numero := shortID(linha.LoteID)
		area := "—"
		if lote, ok := porID[linha.LoteID]; ok {
			numero = "Lote " + lote.Numero
			area = lote.AreaM2.StringFixed(2)
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(numero, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(area, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("R$ "+formatMoney(linha.PrecoAcordado), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("R$ "+formatMoney(linha.Entrada), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%dx", linha.Parcelas), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func totalRow(reserva *entity.Reserva) core.Row {
	total := decimal.Zero
	for _, linha := range reserva.Lotes {
		total = total.Add(linha.PrecoAcordado)
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Forma de pagamento: "+reserva.FormaPagamento, props.Text{
				Size: 9, Top: 4, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("VALOR TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("R$ "+formatMoney(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 1,
			}),
		),
	)
}

func rodapeRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprovante registra a intenção de compra dos lotes acima. "+
				"A reserva aguarda confirmação do loteador e não constitui contrato de compra e venda.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formata um decimal como 1.234.567,89.
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.SplitN(s, ".", 2)
	inteiro := parts[0]

	n := len(inteiro)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, inteiro[i])
	}
	out := string(buf) + "," + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// formatCPF pontua um CPF de 11 dígitos (000.000.000-00).
func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[:3], cpf[3:6], cpf[6:9], cpf[9:])
}

// shortID devolve os 8 primeiros caracteres de um UUID para exibição.
func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
