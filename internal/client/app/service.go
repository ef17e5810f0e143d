package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/modular-commerce/internal/client/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

// UseCases exposes the client module's operations.
type UseCases interface {
	Register(ctx context.Context, in RegisterInput) (RegisterResult, error)
	GetByID(ctx context.Context, id string) (domain.Client, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type RegisterInput struct {
	Name      string
	Email     string
	Phone     string
	Addresses []AddressInput
}

type AddressInput struct {
	Street     string
	Number     string
	City       string
	State      string
	ZipCode    string
	Complement string
}

type RegisterResult struct {
	Client  domain.Client
	Message string
}

type Service struct {
	repo Repository
	now  func() time.Time
}

var _ UseCases = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if err := validateRegister(in); err != nil {
		return RegisterResult{}, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return RegisterResult{}, err
	}
	if exists {
		return RegisterResult{}, fault.Conflictf("Já existe um cliente com este e-mail.")
	}

	client := domain.Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: s.now().UTC(),
	}
	for _, a := range in.Addresses {
		client.Addresses = append(client.Addresses, domain.Address{
			ID:         uuid.NewString(),
			ClientID:   client.ID,
			Street:     a.Street,
			Number:     a.Number,
			City:       a.City,
			State:      a.State,
			ZipCode:    a.ZipCode,
			Complement: a.Complement,
		})
	}

	if err := s.repo.Save(ctx, client); err != nil {
		return RegisterResult{}, err
	}

	slog.InfoContext(ctx, "client registered", "client_id", client.ID)
	return RegisterResult{Client: client, Message: "Cliente registrado com sucesso"}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Client{}, fault.NotFoundf("Cliente não encontrado com ID: %s", id)
		}
		return domain.Client{}, err
	}
	return client, nil
}

func (s *Service) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func validateRegister(in RegisterInput) error {
	var fields []string
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, "name: não pode ser vazio")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields = append(fields, "email: não pode ser vazio")
	} else if !strings.Contains(email, "@") {
		fields = append(fields, "email: formato inválido")
	}
	for i, a := range in.Addresses {
		if strings.TrimSpace(a.Street) == "" {
			fields = append(fields, addressField(i, "street"))
		}
		if strings.TrimSpace(a.City) == "" {
			fields = append(fields, addressField(i, "city"))
		}
		if strings.TrimSpace(a.ZipCode) == "" {
			fields = append(fields, addressField(i, "zipCode"))
		}
	}
	if len(fields) > 0 {
		return fault.ValidationFields("Dados do cliente inválidos", fields...)
	}
	return nil
}

func addressField(i int, name string) string {
	return fmt.Sprintf("addresses[%d].%s: não pode ser vazio", i, name)
}
