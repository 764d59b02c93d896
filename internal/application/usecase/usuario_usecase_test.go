package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

type memUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (r *memUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *memUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *memUsuarioRepo) GetByCPF(_ context.Context, cpf string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.CPF == cpf {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) List(_ context.Context, status string, _, _ int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		if status == "" || u.Status == status {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *memUsuarioRepo) UpdateStatus(_ context.Context, id, status string) error {
	if u, ok := r.usuarios[id]; ok {
		u.Status = status
	}
	return nil
}

func (r *memUsuarioRepo) Delete(_ context.Context, id string) error {
	delete(r.usuarios, id)
	return nil
}

func criaUsuario(t *testing.T, uc *UsuarioUseCase, role string) *dto.UsuarioResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), dto.CreateUsuarioRequest{
		Nome:     "Ana Admin",
		Email:    "ana@example.com",
		CPF:      "529.982.247-25",
		Role:     role,
		Password: "senha-forte",
	})
	require.NoError(t, err)
	return resp
}

func TestUsuarioCreate_AdministrativoJaAprovado(t *testing.T) {
	uc := NewUsuarioUseCase(&memUsuarioRepo{usuarios: map[string]*entity.Usuario{}})
	resp := criaUsuario(t, uc, entity.RoleAdmin)
	assert.Equal(t, entity.UsuarioAprovado, resp.Status)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestUsuarioAprovar_SomentePendente(t *testing.T) {
	repo := &memUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	uc := NewUsuarioUseCase(repo)
	resp := criaUsuario(t, uc, entity.RoleVendedor)

	repo.usuarios[resp.ID].Status = entity.UsuarioPendente
	aprovado, err := uc.Aprovar(context.Background(), resp.ID, dto.AprovacaoRequest{Status: entity.UsuarioAprovado})
	require.NoError(t, err)
	assert.Equal(t, entity.UsuarioAprovado, aprovado.Status)

	_, err = uc.Aprovar(context.Background(), resp.ID, dto.AprovacaoRequest{Status: entity.UsuarioRejeitado})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Aprovar(context.Background(), resp.ID, dto.AprovacaoRequest{Status: "talvez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarioDelete_DevProtegido(t *testing.T) {
	repo := &memUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	uc := NewUsuarioUseCase(repo)
	resp := criaUsuario(t, uc, entity.RoleDev)

	err := uc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotNil(t, repo.usuarios[resp.ID])
}

func TestUsuarioUpdate_TrocaDeSenha(t *testing.T) {
	repo := &memUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	uc := NewUsuarioUseCase(repo)
	resp := criaUsuario(t, uc, entity.RoleVendedor)
	hashAntes := repo.usuarios[resp.ID].PasswordHash

	_, err := uc.Update(context.Background(), resp.ID, dto.UpdateUsuarioRequest{Password: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateUsuarioRequest{Password: "nova-senha"})
	require.NoError(t, err)
	assert.NotEqual(t, hashAntes, repo.usuarios[resp.ID].PasswordHash)
}
