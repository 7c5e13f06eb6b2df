package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	auth := SetupAuth("secreto-de-prueba", 60)

	token, err := auth.GenerateToken(7, "ana@tienda.test", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UsuarioID)
	require.Equal(t, "ana@tienda.test", claims.Correo)
	require.Equal(t, "admin", claims.Rol)
	require.True(t, claims.EsAdmin())
	require.False(t, claims.EsSuperAdmin())
}

func TestVerifyTokenAcceptsBearerPrefix(t *testing.T) {
	auth := SetupAuth("secreto-de-prueba", 60)

	token, err := auth.GenerateToken(7, "ana@tienda.test", "cliente")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UsuarioID)
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	auth := SetupAuth("secreto-de-prueba", 60)
	otra := SetupAuth("otro-secreto", 60)

	token, err := auth.GenerateToken(7, "ana@tienda.test", "cliente")
	require.NoError(t, err)

	_, err = otra.VerifyToken(token)
	require.Error(t, err)

	_, err = auth.VerifyToken("")
	require.Error(t, err)

	_, err = auth.VerifyToken("Bearer ")
	require.Error(t, err)

	_, err = auth.VerifyToken("no-es-un-jwt")
	require.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	auth := Auth{Secret: "secreto-de-prueba", Expire: -time.Minute}

	token, err := auth.GenerateToken(7, "ana@tienda.test", "cliente")
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	require.Error(t, err)
}

func TestGenerateTokenRequiresIdentity(t *testing.T) {
	auth := SetupAuth("secreto-de-prueba", 60)

	_, err := auth.GenerateToken(0, "ana@tienda.test", "cliente")
	require.Error(t, err)

	_, err = auth.GenerateToken(7, "", "cliente")
	require.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	require.NotEqual(t, "secreto123", hash)

	require.NoError(t, VerifyPassword("secreto123", hash))
	require.Error(t, VerifyPassword("incorrecta", hash))
}

func TestRandomPIN(t *testing.T) {
	pin, err := RandomPIN(6)
	require.NoError(t, err)
	require.Len(t, pin, 6)
	for _, c := range pin {
		require.True(t, c >= '0' && c <= '9')
	}

	_, err = RandomPIN(0)
	require.Error(t, err)
}
