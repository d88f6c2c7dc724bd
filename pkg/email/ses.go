package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

type SESConfig struct {
	Region          string
	FromAddress     string
	AccessKeyID     string
	SecretAccessKey string
}

type SESService struct {
	client *sesv2.Client
	from   string
	logger *zap.Logger
}

func NewSESService(cfg SESConfig, logger *zap.Logger) (*SESService, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	// Statik anahtar verilmişse onu kullan, yoksa varsayılan zincir.
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESService{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.FromAddress,
		logger: logger,
	}, nil
}

func (s *SESService) SendBookingConfirmation(to, meetingURL, displayTime, timezone string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(confirmationSubject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(confirmationBody(meetingURL, displayTime, timezone))},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(context.TODO(), input); err != nil {
		s.logger.Error("failed to send booking confirmation",
			zap.String("to", to), zap.Error(err))
		return fmt.Errorf("ses: %w", err)
	}

	s.logger.Info("booking confirmation sent", zap.String("to", to))
	return nil
}
