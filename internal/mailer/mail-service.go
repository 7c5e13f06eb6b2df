package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

var confirmTmpl = template.Must(template.New("confirm").Parse(`
<html>
  <body style="font-family: sans-serif;">
    <h2>Hola {{.Nombre}},</h2>
    <p>Tu PIN de confirmación de cuenta es:</p>
    <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Pin}}</p>
    <p>El PIN expira en {{.ExpiraMin}} minutos.</p>
    <p>Si no creaste esta cuenta, ignora este correo.</p>
  </body>
</html>`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<html>
  <body style="font-family: sans-serif;">
    <h2>Hola {{.Nombre}},</h2>
    <p>Tu PIN de recuperación de contraseña es:</p>
    <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Pin}}</p>
    <p>El PIN expira en {{.ExpiraMin}} minutos.</p>
    <p>Si no solicitaste el cambio, ignora este correo.</p>
  </body>
</html>`))

type PinMail struct {
	Nombre    string
	Pin       string
	ExpiraMin int
}

type MailService struct {
	host     string
	port     string
	user     string
	pass     string
	mailFrom string
}

func NewMailService(host, port, user, pass, mailFrom string) *MailService {
	if port == "" {
		port = "587"
	}
	return &MailService{
		host:     host,
		port:     port,
		user:     user,
		pass:     pass,
		mailFrom: mailFrom,
	}
}

func (s *MailService) SendConfirmEmail(to string, data PinMail) error {
	return s.send(to, "Confirma tu cuenta", confirmTmpl, data)
}

func (s *MailService) SendResetEmail(to string, data PinMail) error {
	return s.send(to, "Recupera tu contraseña", resetTmpl, data)
}

func (s *MailService) send(to, subject string, tmpl *template.Template, data PinMail) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", s.mailFrom),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		buf.String(),
	}, "\r\n")

	log.Printf("[MAIL] smtp sending to=%s via=%s:%s", to, s.host, s.port)

	if err := s.sendSMTPWithTimeout(to, []byte(msg)); err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole SMTP exchange
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if s.user != "" {
		auth := smtp.PlainAuth("", s.user, s.pass, s.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.mailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
