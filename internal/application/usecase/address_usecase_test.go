package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain"
)

// fakeAddressLookup implementa o porto de CEP com resposta fixa.
type fakeAddressLookup struct {
	addr *dto.AddressDTO
	err  error
	got  string
}

func (f *fakeAddressLookup) Lookup(_ context.Context, cep string) (*dto.AddressDTO, error) {
	f.got = cep
	return f.addr, f.err
}

func TestAddressLookup_NormalizaHifen(t *testing.T) {
	fake := &fakeAddressLookup{addr: &dto.AddressDTO{
		CEP: "01310100", Street: "Avenida Paulista", City: "São Paulo", State: "SP", Found: true,
	}}
	uc := usecase.NewAddressUseCase(fake)

	out, err := uc.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)

	assert.Equal(t, "01310100", fake.got, "o provedor recebe só os dígitos")
	assert.True(t, out.Found)
	assert.Equal(t, "São Paulo", out.City)
}

func TestAddressLookup_EntradaInvalida(t *testing.T) {
	uc := usecase.NewAddressUseCase(&fakeAddressLookup{})

	_, err := uc.Lookup(context.Background(), "1234")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "menos de 8 dígitos é rejeitado")

	_, err = uc.Lookup(context.Background(), "abcdefgh")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddressLookup_FalhaDoProvedorNaoPropaga(t *testing.T) {
	uc := usecase.NewAddressUseCase(&fakeAddressLookup{err: errors.New("timeout")})

	out, err := uc.Lookup(context.Background(), "01310100")
	require.NoError(t, err, "falha externa não vira erro duro")
	assert.False(t, out.Found)
	assert.Equal(t, "01310100", out.CEP)
}

func TestAddressLookup_SemProvedor(t *testing.T) {
	uc := usecase.NewAddressUseCase(nil)

	out, err := uc.Lookup(context.Background(), "01310100")
	require.NoError(t, err)
	assert.False(t, out.Found)
}
