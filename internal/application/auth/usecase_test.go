package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/application/auth"
	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/domain"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/infrastructure/memory"
	pkgjwt "github.com/securetrack/securetrack-api/pkg/jwt"
)

const testSecret = "auth-test-secret"

func newAuthUC() *auth.AuthUseCase {
	store := memory.NewStore()
	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "securetrack-test",
	})
}

func TestRegisterUser_NormalizaEmailEPapelPadrao(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "  Maria@SecureTrack.COM ",
		Password: "senha-segura",
		Name:     "Maria",
	})
	require.NoError(t, err)

	assert.Equal(t, "maria@securetrack.com", out.Email)
	assert.Equal(t, entity.RoleOperador, out.Role, "papel ausente assume operador")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@y.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "X@Y.com", Password: "87654321"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"e-mail é único independente de caixa")
}

func TestRegisterUser_PapelDesconhecido(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "x@y.com", Password: "12345678", Role: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenCarregaClaimsDoOperador(t *testing.T) {
	uc := newAuthUC()

	created, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@securetrack.com",
		Password: "admin123",
		Name:     "Admin SecureTrack",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@securetrack.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)

	userID, name, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "Admin SecureTrack", name)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@y.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "x@y.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "naoexiste@y.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
