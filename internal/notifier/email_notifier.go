package notifier

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	config "github.com/x07b/Houssem/configs"
	"github.com/x07b/Houssem/internal/models"
)

// EmailConfigured reports whether mail-relay credentials are present.
// Their absence is a normal condition, not an error: checkout succeeds
// anyway and reports emailSent=false.
func EmailConfigured() bool {
	cfg := config.LoadEmailConfig()
	return cfg.AWSAccessKeyID != "" &&
		cfg.AWSSecretAccessKey != "" &&
		cfg.SenderEmail != "" &&
		cfg.AdminEmail != ""
}

// SendOrderEmails delivers the two checkout notifications: one to the store
// operator, one to the customer. The caller bounds ctx; a failure here must
// never fail the checkout itself.
func SendOrderEmails(ctx context.Context, order models.Order) error {
	cfg := config.LoadEmailConfig()

	if cfg.SenderEmail == "" {
		return fmt.Errorf("sender email address is not configured in environment variables")
	}
	if cfg.AdminEmail == "" {
		return fmt.Errorf("admin email address is not configured in environment variables")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {

		log.Printf("Failed to load AWS SDK config for order %s: %v", order.Code, err)
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	var lines []string
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d", item.ProductID, item.Qty))
	}
	itemsList := strings.Join(lines, "\n")

	notes := order.Notes
	if notes == "" {
		notes = "-"
	}

	adminSubject := fmt.Sprintf("📥 New Order Received – Panier Code: %s", order.Code)
	adminBody := fmt.Sprintf(
		"Hello Admin,\n\nA new order has been placed on your store.\n\n"+
			"Panier Code: %s\nItems Ordered:\n%s\n\n"+
			"Customer Details:\nFull Name: %s\nEmail: %s\nPhone: %s\nNotes: %s\n\n"+
			"⚡ Please process this order and deliver the digital products.\n\nBest,\nYour System",
		order.Code, itemsList, order.Customer.Name, order.Customer.Email, order.Customer.Whatsapp, notes)

	userSubject := fmt.Sprintf("🎉 Your Order Confirmation – Panier Code: %s", order.Code)
	userBody := fmt.Sprintf(
		"Hi %s,\n\nThank you for your purchase! 🎮✨\n\n"+
			"Here are your order details:\nPanier Code: %s\nItems Ordered:\n%s\n\n"+
			"Your Info:\nFull Name: %s\nEmail: %s\nPhone: %s\nNotes: %s\n\n"+
			"🔑 You'll receive your digital product codes by email once the order is processed. "+
			"If you have any questions, simply reply to this email.\n\nThanks for shopping with us",
		order.Customer.Name, order.Code, itemsList,
		order.Customer.Name, order.Customer.Email, order.Customer.Whatsapp, notes)

	if err := sendPlainEmail(ctx, client, cfg.SenderEmail, cfg.AdminEmail, adminSubject, adminBody); err != nil {
		log.Printf("Failed to send admin email for order %s: %v", order.Code, err)
		return err
	}

	if err := sendPlainEmail(ctx, client, cfg.SenderEmail, order.Customer.Email, userSubject, userBody); err != nil {
		log.Printf("Failed to send customer email for order %s to %s: %v", order.Code, order.Customer.Email, err)
		return err
	}

	log.Printf("Order confirmation emails sent successfully for order %s", order.Code)
	return nil
}

func sendPlainEmail(ctx context.Context, client *ses.Client, from, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	input := &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
		},
	}

	if _, err := client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
