package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmoraesdev/lotemap-api/internal/application/auth"
	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
	"github.com/jmoraesdev/lotemap-api/pkg/cpf"
)

// UsuarioUseCase administração de usuários: criação direta, aprovação de
// cadastros pendentes, atualização de perfil e exclusão.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create cria um usuário já aprovado (fluxo administrativo; o auto-cadastro
// de vendedor passa pelo auth.Register e entra pending).
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nome == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if role != entity.RoleDev && role != entity.RoleAdmin && role != entity.RoleVendedor {
		return nil, fmt.Errorf("%w: role %q", domain.ErrInvalidInput, in.Role)
	}
	cpfNorm, err := cpf.Normalize(in.CPF)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	existing, err := uc.repo.GetByCPF(ctx, cpfNorm)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCPFAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Email:        in.Email,
		CPF:          cpfNorm,
		Telefone:     in.Telefone,
		Role:         role,
		Status:       entity.UsuarioAprovado,
		PasswordHash: string(hash),
		Tema:         "light",
		Ativo:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.CRECI != "" {
		creci := in.CRECI
		usuario.CRECI = &creci
	}
	if err := uc.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(usuario), nil
}

// GetByID busca um usuário.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUsuarioResponse(usuario), nil
}

// List lista usuários, com filtro opcional por status de aprovação.
func (uc *UsuarioUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	if status != "" && status != entity.UsuarioPendente && status != entity.UsuarioAprovado && status != entity.UsuarioRejeitado {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	limit, offset := page.DefaultPage()
	usuarios, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UsuarioListResponse{
		Usuarios: make([]dto.UsuarioResponse, 0, len(usuarios)),
		Meta:     dto.PageResponse{Page: page.Page, Limit: limit, Total: len(usuarios)},
	}
	for _, u := range usuarios {
		out.Usuarios = append(out.Usuarios, *auth.ToUsuarioResponse(u))
	}
	return out, nil
}

// Aprovar resolve um cadastro pendente para approved ou rejected.
// Cadastro que não está pendente devolve ErrConflict.
func (uc *UsuarioUseCase) Aprovar(ctx context.Context, id string, in dto.AprovacaoRequest) (*dto.UsuarioResponse, error) {
	if in.Status != entity.UsuarioAprovado && in.Status != entity.UsuarioRejeitado {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	if usuario.Status != entity.UsuarioPendente {
		return nil, fmt.Errorf("%w: cadastro já %s", domain.ErrConflict, usuario.Status)
	}
	if err := uc.repo.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	usuario.Status = in.Status
	return auth.ToUsuarioResponse(usuario), nil
}

// Update atualiza o perfil. Password vazio mantém a senha atual.
func (uc *UsuarioUseCase) Update(ctx context.Context, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		usuario.Nome = in.Nome
	}
	if in.Email != "" {
		usuario.Email = in.Email
	}
	if in.Telefone != "" {
		usuario.Telefone = in.Telefone
	}
	if in.CRECI != "" {
		creci := in.CRECI
		usuario.CRECI = &creci
	}
	if in.Tema != "" {
		usuario.Tema = in.Tema
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, fmt.Errorf("%w: senha muito curta", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(usuario), nil
}

// Delete exclui um usuário. Contas dev são protegidas contra exclusão.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id string) error {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}
	if usuario.Role == entity.RoleDev {
		return fmt.Errorf("%w: contas dev não podem ser excluídas", domain.ErrForbidden)
	}
	return uc.repo.Delete(ctx, id)
}
