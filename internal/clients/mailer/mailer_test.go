package mailer

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/pkg/config"
)

func TestClient_newMessage(t *testing.T) {
	t.Parallel()

	c := New(config.Mailer{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "billing@example.com",
		FromName: "Billing",
	})

	pdf := []byte("%PDF-1.3 test")

	msg := c.newMessage(
		[]string{"buyer@example.com", "accounts@example.com"},
		"Proforma invoice PI-7",
		"Please find the invoice attached.",
		"Proforma_Invoice_PI-7_2024-03-07.pdf",
		pdf,
	)

	buf := new(bytes.Buffer)
	_, err := msg.WriteTo(buf)
	require.NoError(t, err)

	raw := buf.String()
	require.Contains(t, raw, "To: buyer@example.com, accounts@example.com")
	require.Contains(t, raw, `From: "Billing" <billing@example.com>`)
	require.Contains(t, raw, "Subject: Proforma invoice PI-7")
	require.Contains(t, raw, `filename="Proforma_Invoice_PI-7_2024-03-07.pdf"`)
	require.Contains(t, raw, "Content-Type: application/pdf")
	require.Contains(t, raw, base64.StdEncoding.EncodeToString(pdf))
}
