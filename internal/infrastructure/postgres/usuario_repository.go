package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioCols = `id, nome, email, cpf, telefone, creci, role, status, password_hash, tema, ativo, created_at, updated_at`

// UsuarioRepo implementação de UsuarioRepository (usável com pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create insere um usuário. CPF repetido devolve domain.ErrCPFAlreadyExists.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, cpf, telefone, creci, role, status, password_hash, tema, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.Nome, usuario.Email, usuario.CPF, usuario.Telefone,
		usuario.CRECI, usuario.Role, usuario.Status, usuario.PasswordHash,
		usuario.Tema, usuario.Ativo, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCPFAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca um usuário; nil sem erro quando não existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByCPF busca um usuário pelo CPF normalizado (11 dígitos).
func (r *UsuarioRepo) GetByCPF(ctx context.Context, cpf string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE cpf = $1`
	return r.getOne(ctx, query, cpf)
}

func (r *UsuarioRepo) getOne(ctx context.Context, query, arg string) (*entity.Usuario, error) {
	usuario, err := scanUsuario(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return usuario, nil
}

// List lista usuários, com filtro opcional por status de aprovação.
func (r *UsuarioRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioCols + `
		FROM usuarios
		WHERE ($1 = '' OR status = $1)
		ORDER BY nome
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update atualiza o perfil completo do usuário.
func (r *UsuarioRepo) Update(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nome = $2,
		    email = $3,
		    telefone = $4,
		    creci = $5,
		    role = $6,
		    status = $7,
		    password_hash = $8,
		    tema = $9,
		    ativo = $10,
		    updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.Nome, usuario.Email, usuario.Telefone, usuario.CRECI,
		usuario.Role, usuario.Status, usuario.PasswordHash, usuario.Tema,
		usuario.Ativo, usuario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus muda só o status de aprovação.
func (r *UsuarioRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE usuarios SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update status usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui um usuário; as reservas dele ficam com usuario_id nulo.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &u.CPF, &u.Telefone, &u.CRECI,
		&u.Role, &u.Status, &u.PasswordHash, &u.Tema, &u.Ativo,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
