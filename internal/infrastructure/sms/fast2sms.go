// Package sms implementa la pasarela SMS (Fast2SMS) como camino alternativo
// al deep link de WhatsApp: mismo monto calculado, distinto transporte.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Vanshit011/nandan-bottling/internal/application/notify"
	"github.com/Vanshit011/nandan-bottling/pkg/config"
)

const bulkV2URL = "https://www.fast2sms.com/dev/bulkV2"

var _ notify.SMSSender = (*Fast2SMSClient)(nil)

// Fast2SMSClient implementa notify.SMSSender contra el endpoint bulkV2.
type Fast2SMSClient struct {
	cfg        config.SMSConfig
	httpClient *http.Client
}

// NewFast2SMSClient construye el cliente con un timeout de red moderado.
func NewFast2SMSClient(cfg config.SMSConfig) *Fast2SMSClient {
	return &Fast2SMSClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// bulkV2Response respuesta JSON de Fast2SMS.
type bulkV2Response struct {
	Return  bool   `json:"return"`
	Message any    `json:"message"` // string o []string según el caso
	Request string `json:"request_id"`
}

// Send despacha un SMS al número nacional indicado. El error se devuelve al
// caller sin reintentos; no hay cola ni re-entrega automática.
func (c *Fast2SMSClient) Send(ctx context.Context, phone, message string) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("sms: FAST2SMS_API_KEY no configurada")
	}

	params := url.Values{}
	params.Set("authorization", c.cfg.APIKey)
	params.Set("route", c.cfg.Route)
	params.Set("sender_id", c.cfg.SenderID)
	params.Set("message", message)
	params.Set("language", "english")
	params.Set("numbers", phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bulkV2URL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("sms: crear request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms: llamar a Fast2SMS: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("sms: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms: Fast2SMS HTTP %d: %s", resp.StatusCode, body)
	}

	var parsed bulkV2Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("sms: respuesta no es JSON: %w", err)
	}
	if !parsed.Return {
		return fmt.Errorf("sms: Fast2SMS rechazó el envío: %v", parsed.Message)
	}
	return nil
}
