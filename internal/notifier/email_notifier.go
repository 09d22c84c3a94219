package notifier

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	config "github.com/JoseMiguelMilani/teste-site/configs"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailNotifier sends each new order to the kitchen inbox through SES.
type EmailNotifier struct {
	cfg    config.EmailConfig
	client sesAPI
}

func NewEmailNotifier(ctx context.Context, cfg config.EmailConfig) (*EmailNotifier, error) {
	if cfg.SenderEmail == "" || cfg.KitchenEmail == "" {
		return nil, fmt.Errorf("%w: sender and kitchen e-mail are required", ErrNotConfigured)
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	return &EmailNotifier{cfg: cfg, client: ses.NewFromConfig(awsCfg)}, nil
}

// OrderEmail renders the subject, HTML and text bodies for the kitchen.
func OrderEmail(order models.Order) (subject, bodyHTML, bodyText string) {
	subject = fmt.Sprintf("Novo pedido %s - %s", shortID(order.ID), order.CustomerName)

	opts := order.Item.Options
	lines := []string{
		fmt.Sprintf("Cliente: %s (%s)", order.CustomerName, order.CustomerPhone),
		fmt.Sprintf("Marmita %s x%d", order.Item.Size, opts.Quantidade),
	}
	if opts.OrderingType == models.OrderingModaDaCasa && opts.HouseSpecialID != "" {
		lines = append(lines, "Moda da casa: "+opts.HouseSpecialID)
	}
	if len(opts.SelectedIngredients) > 0 {
		lines = append(lines, "Ingredientes: "+strings.Join(opts.SelectedIngredients, ", "))
	}
	if extras := extrasOf(opts); extras != "" {
		lines = append(lines, "Extras: "+extras)
	}
	for _, d := range opts.Drinks {
		lines = append(lines, fmt.Sprintf("Bebida: %s x%d", d.Type, d.Quantity))
	}
	addr := order.Address
	street := fmt.Sprintf("%s, %s", addr.Street, addr.Number)
	if addr.Complement != "" {
		street += " - " + addr.Complement
	}
	lines = append(lines,
		fmt.Sprintf("Endereço: %s, %s, %s, CEP %s", street, addr.Neighborhood, addr.City, addr.ZipCode),
		"Pagamento: "+order.PaymentMethod,
		"Total: "+utils.FormatBRL(order.Total),
	)

	bodyText = strings.Join(lines, "\n")

	var b strings.Builder
	b.WriteString("<html><body><p><strong>Novo pedido ")
	b.WriteString(html.EscapeString(shortID(order.ID)))
	b.WriteString("</strong></p><ul>")
	for _, l := range lines {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(l))
		b.WriteString("</li>")
	}
	b.WriteString("</ul></body></html>")
	bodyHTML = b.String()
	return subject, bodyHTML, bodyText
}

func (n *EmailNotifier) NotifyOrder(ctx context.Context, order models.Order) error {
	subject, bodyHTML, bodyText := OrderEmail(order)

	input := &ses.SendEmailInput{
		Source: aws.String(n.cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{n.cfg.KitchenEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(bodyHTML)},
				Text: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(bodyText)},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		log.Printf("Failed to send e-mail for order %s to %s: %v", order.ID, n.cfg.KitchenEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("Order e-mail sent for order %s to %s", order.ID, n.cfg.KitchenEmail)
	return nil
}

func extrasOf(opts models.MarmitaOptions) string {
	var extras []string
	if opts.Salada {
		extras = append(extras, "Salada")
	}
	if opts.Torresmo {
		extras = append(extras, "Torresmo")
	}
	if opts.Talheres {
		extras = append(extras, "Talheres")
	}
	return strings.Join(extras, ", ")
}
