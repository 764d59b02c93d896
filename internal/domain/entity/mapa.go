package entity

import "time"

// Mapa representa um loteamento: a planta com imagem de fundo sobre a qual
// as quadras e os lotes são posicionados.
type Mapa struct {
	ID           string
	Nome         string
	Descricao    string
	ImagemObjeto string // chave do objeto no bucket de imagens (vazio = sem imagem)
	LarguraPx    int
	AlturaPx     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
