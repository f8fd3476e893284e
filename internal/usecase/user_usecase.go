package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/EduardoMSouza/consultorio-api/internal/converter"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginAlreadyExists = errors.New("login já cadastrado")
	ErrRoleNotFound       = errors.New("perfil de acesso não encontrado")
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	List(ctx context.Context, filter *entity.PageFilter) ([]dto.UserResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	role, err := u.roleRepo.FindByName(db, req.Role)
	if err != nil {
		u.log.Warnf("Failed to find role %s: %+v", req.Role, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Login:    req.Login,
		Email:    req.Email,
		Password: string(hashedPassword),
		Nome:     req.Nome,
		RoleID:   role.ID,
	}

	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "login") {
			return nil, ErrLoginAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	user.Role = *role
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) List(ctx context.Context, filter *entity.PageFilter) ([]dto.UserResponse, int64, error) {
	users, total, err := u.userRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, 0, err
	}
	return converter.UsersToResponses(users), total, nil
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	if req.Nome != "" {
		user.Nome = req.Nome
	}
	if req.Role != "" {
		role, err := u.roleRepo.FindByName(db, req.Role)
		if err != nil {
			u.log.Warnf("Failed to find role %s: %+v", req.Role, err)
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		user.RoleID = role.ID
		user.Role = *role
	}
	if req.Ativo != nil {
		user.Ativo = req.Ativo
	}

	if err := u.userRepo.Update(db, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.userRepo.Delete(u.db.WithContext(ctx), id)
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
