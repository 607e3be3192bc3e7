package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/adangerfield1026/Capstone/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitSES loads AWS credentials and builds the SES client. Call once at
// startup, before any email is sent.
func InitSES() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return nil
}

func sendEmail(to, subject, body string) error {
	if sesClient == nil {
		return fmt.Errorf("SES client not initialized")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}
	if _, err := sesClient.SendEmail(context.TODO(), input); err != nil {
		logger.Error("SES send failed", "to", to, "err", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendMFAEmail delivers the 6-digit login code.
func SendMFAEmail(to, code string) error {
	body := fmt.Sprintf("Your verification code is: %s\n\nUse this to complete your login.", code)
	return sendEmail(to, "Your MFA Code", body)
}

// SendResetEmail delivers the password reset code.
func SendResetEmail(to, token string) error {
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", token)
	return sendEmail(to, "Password Reset Code", body)
}
