package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/pkg/config"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client e-mails fueling receipts to the configured recipients.
type Client struct {
	cfg    config.Mailer
	dialer dialer
}

func New(cfg config.Mailer) *Client {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	d.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: d,
	}
}

func (c *Client) SendReceipt(ctx context.Context, r entity.Receipt, pdf []byte) error {
	if len(c.cfg.Recipients) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", c.cfg.Recipients...)
	msg.SetHeader("Subject", "Comprovante de Abastecimento "+r.Code)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Voucher %s validado em %s.\nVeículo: %s\nPosto: %s\nLitros: %s\nValor total: R$ %s\n",
		r.Code,
		r.SettledAt.Format("02/01/2006 15:04"),
		orDash(r.VehiclePlate),
		orDash(r.StationName),
		r.LitersDispensed.StringFixed(3),
		r.TotalAmount.StringFixed(2),
	))

	msg.Attach("comprovante-"+r.Code+".pdf",
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("send receipt email: %w", err)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
