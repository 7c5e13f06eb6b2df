package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/interfaces"
	"github.com/rosalinebakery/store_service/internal/repository"
	"gorm.io/gorm"
)

const pinTTL = 15 * time.Minute

type UsuarioService interface {
	Registrar(ctx context.Context, input dto.UsuarioCreate) (*domain.Usuario, error)
	Autenticar(ctx context.Context, correo, contrasena string) (*domain.Usuario, error)
	ConfirmarCuenta(ctx context.Context, correo, pin string) (*domain.Usuario, error)
	ReenviarConfirmacion(ctx context.Context, correo string) error
	SolicitarRecuperacion(ctx context.Context, correo string) error
	ValidarPinRecuperacion(ctx context.Context, correo, pin string) bool
	CambiarContrasenaConPin(ctx context.Context, input dto.CambiarContrasenaRequest) error
	CambiarContrasenaAutenticado(ctx context.Context, usuarioID uint, input dto.CambiarContrasenaAutenticadoRequest) error
	Listar(ctx context.Context, skip, limit int, filter dto.UsuarioFilter) ([]domain.Usuario, error)
	Obtener(ctx context.Context, usuarioID uint) (*domain.Usuario, error)
	Actualizar(ctx context.Context, usuarioID uint, input dto.UsuarioUpdate, current dto.TokenClaims) (*domain.Usuario, error)
	Eliminar(ctx context.Context, usuarioID uint, current dto.TokenClaims) error
}

type usuarioService struct {
	repo     repository.UsuarioRepository
	producer interfaces.ProducerHandler
}

func NewUsuarioService(repo repository.UsuarioRepository, producer interfaces.ProducerHandler) UsuarioService {
	return &usuarioService{repo: repo, producer: producer}
}

func (s *usuarioService) Registrar(ctx context.Context, input dto.UsuarioCreate) (*domain.Usuario, error) {
	correo := strings.TrimSpace(strings.ToLower(input.Correo))
	if correo == "" || strings.TrimSpace(input.Contrasena) == "" {
		return nil, fmt.Errorf("%w: correo y contraseña son obligatorios", ErrInvalid)
	}
	if len(input.Contrasena) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", ErrInvalid)
	}

	rol := input.Rol
	if rol == "" {
		rol = domain.RolCliente
	}
	if rol != domain.RolCliente && rol != domain.RolAdmin && rol != domain.RolSuperAdmin {
		return nil, fmt.Errorf("%w: rol inválido", ErrInvalid)
	}

	existing, err := s.repo.FindByCorreo(ctx, correo)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, fmt.Errorf("%w: correo ya registrado", ErrConflict)
	}

	hash, err := helper.HashPassword(input.Contrasena)
	if err != nil {
		return nil, err
	}
	pin, err := helper.RandomPIN(6)
	if err != nil {
		return nil, err
	}
	expira := time.Now().UTC().Add(pinTTL)

	usuario := &domain.Usuario{
		Correo:                  correo,
		ContrasenaHash:          hash,
		Rol:                     rol,
		FechaCreacion:           time.Now().UTC(),
		EmailVerificado:         "N",
		TokenConfirmacion:       &pin,
		TokenConfirmacionExpira: &expira,
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: correo ya registrado", ErrConflict)
		}
		return nil, err
	}

	s.publishPinEvent(dto.EventConfirmEmail, correo, pin)
	return usuario, nil
}

func (s *usuarioService) Autenticar(ctx context.Context, correo, contrasena string) (*domain.Usuario, error) {
	correo = strings.TrimSpace(strings.ToLower(correo))
	if correo == "" || contrasena == "" {
		return nil, fmt.Errorf("%w: correo o contraseña incorrectos", ErrUnauthorized)
	}

	usuario, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		return nil, fmt.Errorf("%w: correo o contraseña incorrectos", ErrUnauthorized)
	}
	if err := helper.VerifyPassword(contrasena, usuario.ContrasenaHash); err != nil {
		return nil, fmt.Errorf("%w: correo o contraseña incorrectos", ErrUnauthorized)
	}
	if usuario.EmailVerificado != "S" {
		return nil, fmt.Errorf("%w: cuenta no confirmada, verifica tu correo electrónico", ErrForbidden)
	}
	return usuario, nil
}

func (s *usuarioService) ConfirmarCuenta(ctx context.Context, correo, pin string) (*domain.Usuario, error) {
	usuario, err := s.repo.FindByCorreo(ctx, strings.ToLower(correo))
	if err != nil {
		return nil, fmt.Errorf("%w: PIN de confirmación inválido", ErrNotFound)
	}
	if usuario.EmailVerificado == "S" {
		return nil, fmt.Errorf("%w: la cuenta ya está confirmada", ErrConflict)
	}
	if usuario.TokenConfirmacion == nil || *usuario.TokenConfirmacion != pin {
		return nil, fmt.Errorf("%w: PIN de confirmación inválido", ErrNotFound)
	}
	if usuario.TokenConfirmacionExpira != nil && time.Now().UTC().After(*usuario.TokenConfirmacionExpira) {
		return nil, fmt.Errorf("%w: el PIN de confirmación ha expirado, solicita uno nuevo", ErrConflict)
	}

	usuario.EmailVerificado = "S"
	usuario.TokenConfirmacion = nil
	usuario.TokenConfirmacionExpira = nil
	if err := s.repo.Save(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (s *usuarioService) ReenviarConfirmacion(ctx context.Context, correo string) error {
	correo = strings.ToLower(correo)
	usuario, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		// do not reveal whether the address exists
		return fmt.Errorf("%w: si el correo existe y no está confirmado, se enviará un nuevo PIN", ErrNotFound)
	}
	if usuario.EmailVerificado == "S" {
		return fmt.Errorf("%w: la cuenta ya está confirmada", ErrConflict)
	}

	pin, err := helper.RandomPIN(6)
	if err != nil {
		return err
	}
	expira := time.Now().UTC().Add(pinTTL)
	usuario.TokenConfirmacion = &pin
	usuario.TokenConfirmacionExpira = &expira
	if err := s.repo.Save(ctx, usuario); err != nil {
		return err
	}

	s.publishPinEvent(dto.EventConfirmEmail, correo, pin)
	return nil
}

func (s *usuarioService) SolicitarRecuperacion(ctx context.Context, correo string) error {
	correo = strings.ToLower(correo)
	usuario, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		// same response whether or not the account exists
		return nil
	}

	pin, err := helper.RandomPIN(6)
	if err != nil {
		return err
	}
	expira := time.Now().UTC().Add(pinTTL)
	usuario.TokenReset = &pin
	usuario.TokenResetExpira = &expira
	if err := s.repo.Save(ctx, usuario); err != nil {
		return err
	}

	s.publishPinEvent(dto.EventResetPassword, correo, pin)
	return nil
}

func (s *usuarioService) ValidarPinRecuperacion(ctx context.Context, correo, pin string) bool {
	usuario, err := s.repo.FindByCorreo(ctx, strings.ToLower(correo))
	if err != nil {
		return false
	}
	if usuario.TokenReset == nil || usuario.TokenResetExpira == nil {
		return false
	}
	if *usuario.TokenReset != pin {
		return false
	}
	return !time.Now().UTC().After(*usuario.TokenResetExpira)
}

func (s *usuarioService) CambiarContrasenaConPin(ctx context.Context, input dto.CambiarContrasenaRequest) error {
	if !s.ValidarPinRecuperacion(ctx, input.Correo, input.Pin) {
		return fmt.Errorf("%w: PIN inválido o expirado, solicita un nuevo PIN", ErrConflict)
	}

	usuario, err := s.repo.FindByCorreo(ctx, strings.ToLower(input.Correo))
	if err != nil {
		return notFound(err, "usuario")
	}
	hash, err := helper.HashPassword(input.NuevaContrasena)
	if err != nil {
		return err
	}
	usuario.ContrasenaHash = hash
	usuario.TokenReset = nil
	usuario.TokenResetExpira = nil
	return s.repo.Save(ctx, usuario)
}

func (s *usuarioService) CambiarContrasenaAutenticado(ctx context.Context, usuarioID uint, input dto.CambiarContrasenaAutenticadoRequest) error {
	usuario, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return notFound(err, "usuario")
	}
	if err := helper.VerifyPassword(input.ContrasenaActual, usuario.ContrasenaHash); err != nil {
		return fmt.Errorf("%w: contraseña actual incorrecta", ErrConflict)
	}
	hash, err := helper.HashPassword(input.NuevaContrasena)
	if err != nil {
		return err
	}
	usuario.ContrasenaHash = hash
	return s.repo.Save(ctx, usuario)
}

func (s *usuarioService) Listar(ctx context.Context, skip, limit int, filter dto.UsuarioFilter) ([]domain.Usuario, error) {
	return s.repo.List(ctx, skip, limit, filter)
}

func (s *usuarioService) Obtener(ctx context.Context, usuarioID uint) (*domain.Usuario, error) {
	usuario, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, notFound(err, "usuario")
	}
	return usuario, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, usuarioID uint, input dto.UsuarioUpdate, current dto.TokenClaims) (*domain.Usuario, error) {
	usuario, err := s.Obtener(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	if !current.EsSuperAdmin() && input.EmailVerificado != nil {
		return nil, fmt.Errorf("%w: solo los super administradores pueden modificar el estado de verificación de email", ErrForbidden)
	}

	if current.EsSuperAdmin() {
		if usuarioID == current.UsuarioID && input.Rol != nil && *input.Rol != domain.RolSuperAdmin {
			return nil, fmt.Errorf("%w: no puedes cambiar tu propio rol", ErrForbidden)
		}
	} else if current.Rol == domain.RolAdmin {
		if usuario.EsAdmin() && usuario.ID != current.UsuarioID {
			return nil, fmt.Errorf("%w: no puedes modificar a otro administrador", ErrForbidden)
		}
	}

	if input.Correo != nil {
		usuario.Correo = strings.TrimSpace(strings.ToLower(*input.Correo))
	}
	if input.Contrasena != nil {
		hash, err := helper.HashPassword(*input.Contrasena)
		if err != nil {
			return nil, err
		}
		usuario.ContrasenaHash = hash
	}
	if input.Rol != nil {
		usuario.Rol = *input.Rol
	}
	if input.EmailVerificado != nil && current.EsSuperAdmin() {
		usuario.EmailVerificado = *input.EmailVerificado
	}

	if err := s.repo.Save(ctx, usuario); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: correo ya registrado", ErrConflict)
		}
		return nil, err
	}
	return usuario, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, usuarioID uint, current dto.TokenClaims) error {
	usuario, err := s.Obtener(ctx, usuarioID)
	if err != nil {
		return err
	}

	if usuarioID == current.UsuarioID {
		return fmt.Errorf("%w: no puedes eliminarte a ti mismo", ErrForbidden)
	}
	if current.Rol == domain.RolAdmin && usuario.EsAdmin() {
		return fmt.Errorf("%w: no puedes eliminar a otro administrador", ErrForbidden)
	}

	return s.repo.Delete(ctx, usuario)
}

func (s *usuarioService) publishPinEvent(key, correo, pin string) {
	if s.producer == nil {
		return
	}
	nombre := correo
	if at := strings.Index(correo, "@"); at > 0 {
		nombre = correo[:at]
	}
	payload, err := json.Marshal(dto.PinEmailEvent{
		Correo:    correo,
		Nombre:    nombre,
		Pin:       pin,
		ExpiraMin: int(pinTTL.Minutes()),
	})
	if err != nil {
		log.Printf("marshal %s event: %v", key, err)
		return
	}
	if err := s.producer.PublishMessage([]byte(key), payload); err != nil {
		log.Printf("publish %s event: %v", key, err)
	}
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s no encontrado", ErrNotFound, what)
	}
	return err
}
