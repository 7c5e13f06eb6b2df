package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rosalinebakery/store_service/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	Secret string
	Expire time.Duration
}

func SetupAuth(secret string, expireMinutes int) Auth {
	if expireMinutes <= 0 {
		expireMinutes = 60
	}
	return Auth{
		Secret: secret,
		Expire: time.Duration(expireMinutes) * time.Minute,
	}
}

func (a Auth) GenerateToken(usuarioID uint, correo, rol string) (string, error) {
	if usuarioID == 0 || correo == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        correo,
		"id_usuario": usuarioID,
		"rol":        rol,
		"iat":        now.Unix(),
		"exp":        now.Add(a.Expire).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.TokenClaims{}, errors.New("missing token")
	}

	// accepts both "Bearer <token>" and "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.TokenClaims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.TokenClaims{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.TokenClaims{}, errors.New("invalid token claims")
	}

	idAny, ok := claims["id_usuario"].(float64)
	if !ok || idAny <= 0 {
		return dto.TokenClaims{}, errors.New("invalid token claims")
	}
	correo, _ := claims["sub"].(string)
	rol, _ := claims["rol"].(string)

	return dto.TokenClaims{
		UsuarioID: uint(idAny),
		Correo:    correo,
		Rol:       rol,
	}, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.TokenClaims, error) {
	u := ctx.Locals("user")
	claims, ok := u.(dto.TokenClaims)
	if !ok {
		return dto.TokenClaims{}, errors.New("missing auth user in context")
	}
	return claims, nil
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}
