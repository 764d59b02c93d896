package usecase

import (
	"context"
	"io"
	"time"
)

// ImageStore porto de armazenamento de objetos para as imagens de mapa.
type ImageStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	// PresignedURL devolve uma URL temporária de leitura para o objeto.
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// Cache porto de cache de leitura para listagens quentes e para o dashboard.
type Cache interface {
	// GetJSON preenche dest e devolve true no hit; false (sem erro) no miss.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
