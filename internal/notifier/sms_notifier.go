package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "github.com/JoseMiguelMilani/teste-site/configs"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

type SMSResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Cost       string `json:"cost"`
			Status     string `json:"status"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// SMSNotifier confirms the order to the customer through Africa's Talking.
type SMSNotifier struct {
	cfg    config.AfricaTalkingConfig
	client *http.Client
}

func NewSMSNotifier(cfg config.AfricaTalkingConfig) *SMSNotifier {
	return &SMSNotifier{cfg: cfg, client: &http.Client{Timeout: 10 * time.Second}}
}

func SMSMessage(order models.Order) string {
	return fmt.Sprintf("Sabor & Cia: seu pedido %s foi recebido! Total: %s. Obrigado pela preferência!",
		shortID(order.ID), utils.FormatBRL(order.Total))
}

func (n *SMSNotifier) NotifyOrder(ctx context.Context, order models.Order) error {
	if n.cfg.APIKey == "" || n.cfg.Username == "" {
		return ErrNotConfigured
	}

	data := url.Values{}
	data.Set("username", n.cfg.Username)
	data.Set("to", order.CustomerPhone)
	data.Set("message", SMSMessage(order))
	data.Set("from", n.cfg.SenderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.SMSURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", n.cfg.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("SMS send failed to %s for order %s: %v", order.CustomerPhone, order.ID, err)
		return fmt.Errorf("SMS send failed: %w", err)
	}
	defer resp.Body.Close()

	var smsResp SMSResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&smsResp)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		if decodeErr == nil {
			log.Printf("SMS API returned error for %s (order %s): status %d, message: %s", order.CustomerPhone, order.ID, resp.StatusCode, smsResp.SMSMessageData.Message)
		} else {
			log.Printf("SMS API returned status %d for %s (order %s): %v", resp.StatusCode, order.CustomerPhone, order.ID, decodeErr)
		}
		return fmt.Errorf("SMS API returned non-success status: %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode SMS response: %w", decodeErr)
	}

	log.Printf("SMS sent to %s for order %s: %s", order.CustomerPhone, order.ID, smsResp.SMSMessageData.Message)
	return nil
}

// shortID keeps the last 6 characters, enough for the kitchen to call out.
func shortID(id string) string {
	if len(id) <= 6 {
		return "#" + id
	}
	return "#" + id[len(id)-6:]
}
