package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
	"github.com/jmoraesdev/lotemap-api/pkg/cpf"
	"github.com/jmoraesdev/lotemap-api/pkg/jwt"
)

// JWTConfig parâmetros de geração de token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticação: auto-cadastro de vendedor e login por CPF.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register cria um vendedor com status pending; a conta só faz login depois
// que um admin aprovar. Devolve ErrCPFAlreadyExists para CPF já cadastrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nome == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: senha muito curta", domain.ErrInvalidInput)
	}
	cpfNorm, err := cpf.Normalize(in.CPF)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := uc.usuarioRepo.GetByCPF(ctx, cpfNorm)
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
		Role:         entity.RoleVendedor,
		Status:       entity.UsuarioPendente,
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
	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(usuario), nil
}

// Login verifica CPF/password e devolve token + usuário.
//
// CPF desconhecido e senha errada respondem igual (ErrUnauthorized) para não
// revelar quais CPFs existem. Conta pendente ou rejeitada devolve
// ErrUsuarioNaoAprovado depois da senha conferir.
func (uc *UseCase) Login(ctx context.Context, cpfIn, password string) (*dto.LoginResponse, error) {
	if cpfIn == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	cpfNorm, err := cpf.Normalize(cpfIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	usuario, err := uc.usuarioRepo.GetByCPF(ctx, cpfNorm)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Ativo {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Status != entity.UsuarioAprovado {
		return nil, domain.ErrUsuarioNaoAprovado
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *ToUsuarioResponse(usuario),
	}, nil
}

// ToUsuarioResponse mapeia a entidade para o DTO público (sem o hash da senha).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	out := &dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		CPF:       u.CPF,
		Telefone:  u.Telefone,
		Role:      u.Role,
		Status:    u.Status,
		Tema:      u.Tema,
		Ativo:     u.Ativo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.CRECI != nil {
		out.CRECI = *u.CRECI
	}
	return out
}
