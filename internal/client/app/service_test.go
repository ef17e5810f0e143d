package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/modular-commerce/internal/client/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

type fakeRepo struct {
	clients map[string]domain.Client
	emails  map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clients: make(map[string]domain.Client), emails: make(map[string]bool)}
}

func (f *fakeRepo) Save(_ context.Context, c domain.Client) error {
	f.clients[c.ID] = c
	f.emails[c.Email] = true
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return domain.Client{}, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.emails[email], nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Phone: "11999990000",
		Addresses: []AddressInput{{
			Street:  "Rua das Flores",
			Number:  "100",
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01001-000",
		}},
	}
}

func TestRegisterClient(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	out, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Cliente registrado com sucesso", out.Message)
	assert.NotEmpty(t, out.Client.ID)
	require.Len(t, out.Client.Addresses, 1)
	assert.Equal(t, out.Client.ID, out.Client.Addresses[0].ClientID)
	assert.Contains(t, repo.clients, out.Client.ID)
}

func TestRegisterClientNormalizesEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	in := validInput()
	in.Email = "  Maria@Example.com "
	out, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", out.Client.Email)
}

func TestRegisterClientDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, fault.Conflict, fault.KindOf(err))
	assert.Equal(t, "Já existe um cliente com este e-mail.", err.Error())
}

func TestRegisterClientValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:     "not-an-email",
		Addresses: []AddressInput{{}},
	})
	require.Error(t, err)
	assert.Equal(t, fault.Validation, fault.KindOf(err))
	fields := fault.FieldsOf(err)
	assert.Contains(t, fields, "name: não pode ser vazio")
	assert.Contains(t, fields, "email: formato inválido")
	assert.Contains(t, fields, "addresses[0].street: não pode ser vazio")
}

func TestExistsByID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	repo.clients["c1"] = domain.Client{ID: "c1"}

	exists, err := svc.ExistsByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}
